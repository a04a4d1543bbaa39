package executor

import (
	"errors"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/document"
)

// Type definitions and groups are always created at the top level; their
// payloads carry no parent address.

func (e *Executor) addSimpleType(p command.AddSimpleTypePayload) command.Response {
	addr, err := e.tree.Insert(address.Root, document.Node{
		Kind:          address.KindSimpleType,
		Name:          p.TypeName,
		BaseType:      p.BaseType,
		Facets:        p.Facets,
		Documentation: p.Documentation,
	})
	if err != nil {
		if errors.Is(err, document.ErrExists) {
			return command.Fail("Duplicate top-level type name: %s", p.TypeName)
		}
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeSimpleType(p command.RemoveSimpleTypePayload) command.Response {
	if _, resp, ok := e.target(command.FamilySimpleType, p.TypeAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.TypeAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifySimpleType(p command.ModifySimpleTypePayload) command.Response {
	addr := p.TypeAddress
	n, resp, ok := e.target(command.FamilySimpleType, addr)
	if !ok {
		return resp
	}

	if p.TypeName != nil && *p.TypeName != n.Name {
		moved, err := e.tree.Rename(addr, *p.TypeName)
		if err != nil {
			if errors.Is(err, document.ErrExists) {
				return command.Fail("Duplicate top-level type name: %s", *p.TypeName)
			}
			return command.Fail("%s", err)
		}
		addr = moved
	}

	if p.BaseType != nil {
		n.BaseType = *p.BaseType
	}
	if p.Facets != nil {
		n.Facets = p.Facets
	}
	if p.Documentation != nil {
		n.Documentation = *p.Documentation
	}
	return command.OK(map[string]any{"address": addr})
}

func (e *Executor) addComplexType(p command.AddComplexTypePayload) command.Response {
	addr, err := e.tree.Insert(address.Root, document.Node{
		Kind:          address.KindComplexType,
		Name:          p.TypeName,
		ContentModel:  p.ContentModel,
		Abstract:      p.Abstract,
		BaseType:      p.BaseType,
		Mixed:         p.Mixed,
		Documentation: p.Documentation,
	})
	if err != nil {
		if errors.Is(err, document.ErrExists) {
			return command.Fail("Duplicate top-level type name: %s", p.TypeName)
		}
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeComplexType(p command.RemoveComplexTypePayload) command.Response {
	if _, resp, ok := e.target(command.FamilyComplexType, p.TypeAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.TypeAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyComplexType(p command.ModifyComplexTypePayload) command.Response {
	addr := p.TypeAddress
	n, resp, ok := e.target(command.FamilyComplexType, addr)
	if !ok {
		return resp
	}

	if p.TypeName != nil && *p.TypeName != n.Name {
		moved, err := e.tree.Rename(addr, *p.TypeName)
		if err != nil {
			if errors.Is(err, document.ErrExists) {
				return command.Fail("Duplicate top-level type name: %s", *p.TypeName)
			}
			return command.Fail("%s", err)
		}
		addr = moved
	}

	if p.ContentModel != nil {
		n.ContentModel = *p.ContentModel
	}
	if p.Abstract != nil {
		n.Abstract = *p.Abstract
	}
	if p.BaseType != nil {
		n.BaseType = *p.BaseType
	}
	if p.Mixed != nil {
		n.Mixed = *p.Mixed
	}
	if p.Documentation != nil {
		n.Documentation = *p.Documentation
	}
	return command.OK(map[string]any{"address": addr})
}

func (e *Executor) addGroup(p command.AddGroupPayload) command.Response {
	addr, err := e.tree.Insert(address.Root, document.Node{
		Kind:          address.KindGroup,
		Name:          p.GroupName,
		ContentModel:  p.ContentModel,
		Documentation: p.Documentation,
	})
	if err != nil {
		if errors.Is(err, document.ErrExists) {
			return command.Fail("Duplicate top-level group name: %s", p.GroupName)
		}
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeGroup(p command.RemoveGroupPayload) command.Response {
	if _, resp, ok := e.target(command.FamilyGroup, p.GroupAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.GroupAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyGroup(p command.ModifyGroupPayload) command.Response {
	addr := p.GroupAddress
	n, resp, ok := e.target(command.FamilyGroup, addr)
	if !ok {
		return resp
	}

	if p.GroupName != nil && *p.GroupName != n.Name {
		moved, err := e.tree.Rename(addr, *p.GroupName)
		if err != nil {
			if errors.Is(err, document.ErrExists) {
				return command.Fail("Duplicate top-level group name: %s", *p.GroupName)
			}
			return command.Fail("%s", err)
		}
		addr = moved
	}

	if p.ContentModel != nil {
		n.ContentModel = *p.ContentModel
	}
	if p.Documentation != nil {
		n.Documentation = *p.Documentation
	}
	return command.OK(map[string]any{"address": addr})
}

func (e *Executor) addAttributeGroup(p command.AddAttributeGroupPayload) command.Response {
	addr, err := e.tree.Insert(address.Root, document.Node{
		Kind:          address.KindAttributeGroup,
		Name:          p.GroupName,
		Documentation: p.Documentation,
	})
	if err != nil {
		if errors.Is(err, document.ErrExists) {
			return command.Fail("Duplicate top-level group name: %s", p.GroupName)
		}
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeAttributeGroup(p command.RemoveAttributeGroupPayload) command.Response {
	if _, resp, ok := e.target(command.FamilyAttributeGroup, p.GroupAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.GroupAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyAttributeGroup(p command.ModifyAttributeGroupPayload) command.Response {
	addr := p.GroupAddress
	n, resp, ok := e.target(command.FamilyAttributeGroup, addr)
	if !ok {
		return resp
	}

	if p.GroupName != nil && *p.GroupName != n.Name {
		moved, err := e.tree.Rename(addr, *p.GroupName)
		if err != nil {
			if errors.Is(err, document.ErrExists) {
				return command.Fail("Duplicate top-level group name: %s", *p.GroupName)
			}
			return command.Fail("%s", err)
		}
		addr = moved
	}

	if p.Documentation != nil {
		n.Documentation = *p.Documentation
	}
	return command.OK(map[string]any{"address": addr})
}
