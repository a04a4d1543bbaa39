package command

// AddGroupPayload creates a top-level model group composed under
// ContentModel.
type AddGroupPayload struct {
	GroupName     string       `json:"groupName"`
	ContentModel  ContentModel `json:"contentModel"`
	Documentation string       `json:"documentation,omitempty"`
}

// RemoveGroupPayload deletes the group at GroupAddress.
type RemoveGroupPayload struct {
	GroupAddress string `json:"groupAddress"`
}

// ModifyGroupPayload patches the group at GroupAddress.
type ModifyGroupPayload struct {
	GroupAddress  string        `json:"groupAddress"`
	GroupName     *string       `json:"groupName,omitempty"`
	ContentModel  *ContentModel `json:"contentModel,omitempty"`
	Documentation *string       `json:"documentation,omitempty"`
}

// AddAttributeGroupPayload creates a top-level attribute group.
type AddAttributeGroupPayload struct {
	GroupName     string `json:"groupName"`
	Documentation string `json:"documentation,omitempty"`
}

// RemoveAttributeGroupPayload deletes the attribute group at GroupAddress.
type RemoveAttributeGroupPayload struct {
	GroupAddress string `json:"groupAddress"`
}

// ModifyAttributeGroupPayload patches the attribute group at GroupAddress.
type ModifyAttributeGroupPayload struct {
	GroupAddress  string  `json:"groupAddress"`
	GroupName     *string `json:"groupName,omitempty"`
	Documentation *string `json:"documentation,omitempty"`
}
