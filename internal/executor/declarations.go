package executor

import (
	"errors"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/document"
)

func (e *Executor) addElement(p command.AddElementPayload) command.Response {
	if _, ok := e.tree.Get(p.Parent); !ok {
		return command.Fail("Parent element not found: %s", p.Parent)
	}
	if p.Ref != "" && !e.resolveRef(address.KindElement, p.Ref) {
		return command.Fail("Referenced element not found: %s", p.Ref)
	}

	addr, err := e.tree.Insert(p.Parent, document.Node{
		Kind:          address.KindElement,
		Name:          p.Name,
		Type:          p.Type,
		Ref:           p.Ref,
		MinOccurs:     p.MinOccurs,
		MaxOccurs:     p.MaxOccurs,
		Documentation: p.Documentation,
	})
	if err != nil {
		if errors.Is(err, document.ErrExists) {
			return command.Fail("Duplicate top-level element name: %s", p.Name)
		}
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeElement(p command.RemoveElementPayload) command.Response {
	if _, resp, ok := e.target(command.FamilyElement, p.ElementAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.ElementAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyElement(p command.ModifyElementPayload) command.Response {
	addr := p.ElementAddress
	n, resp, ok := e.target(command.FamilyElement, addr)
	if !ok {
		return resp
	}

	refSet := p.Ref != nil && *p.Ref != ""
	if refSet {
		if isTopLevel(addr) {
			return command.Fail("Top-level elements cannot be references")
		}
		if !e.resolveRef(address.KindElement, *p.Ref) {
			return command.Fail("Referenced element not found: %s", *p.Ref)
		}
	}

	// Work out the final name before touching anything: the rename is the
	// only fallible mutation, and it must happen first so a rejected
	// command leaves the tree untouched.
	newName := n.Name
	if refSet {
		newName = ""
	}
	if p.Name != nil && *p.Name != "" {
		newName = *p.Name
	}
	if newName != n.Name {
		moved, err := e.tree.Rename(addr, newName)
		if err != nil {
			if errors.Is(err, document.ErrExists) {
				return command.Fail("Duplicate top-level element name: %s", newName)
			}
			return command.Fail("%s", err)
		}
		addr = moved
	}

	if p.Ref != nil {
		n.Ref = *p.Ref
		if refSet {
			n.Type = ""
		}
	}
	if p.Name != nil && *p.Name != "" {
		n.Ref = ""
	}
	if p.Type != nil {
		n.Type = *p.Type
		if *p.Type != "" {
			n.Ref = ""
		}
	}
	if p.MinOccurs != nil {
		n.MinOccurs = p.MinOccurs
	}
	if p.MaxOccurs != nil {
		n.MaxOccurs = p.MaxOccurs
	}
	if p.Documentation != nil {
		n.Documentation = *p.Documentation
	}
	return command.OK(map[string]any{"address": addr})
}

func (e *Executor) addAttribute(p command.AddAttributePayload) command.Response {
	if _, ok := e.tree.Get(p.Parent); !ok {
		return command.Fail("Parent element not found: %s", p.Parent)
	}
	if p.Ref != "" && !e.resolveRef(address.KindAttribute, p.Ref) {
		return command.Fail("Referenced attribute not found: %s", p.Ref)
	}

	addr, err := e.tree.Insert(p.Parent, document.Node{
		Kind:          address.KindAttribute,
		Name:          p.Name,
		Type:          p.Type,
		Ref:           p.Ref,
		Required:      p.Required,
		Default:       p.Default,
		Fixed:         p.Fixed,
		Documentation: p.Documentation,
	})
	if err != nil {
		if errors.Is(err, document.ErrExists) {
			return command.Fail("Duplicate top-level attribute name: %s", p.Name)
		}
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeAttribute(p command.RemoveAttributePayload) command.Response {
	if _, resp, ok := e.target(command.FamilyAttribute, p.AttributeAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.AttributeAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyAttribute(p command.ModifyAttributePayload) command.Response {
	addr := p.AttributeAddress
	n, resp, ok := e.target(command.FamilyAttribute, addr)
	if !ok {
		return resp
	}

	refSet := p.Ref != nil && *p.Ref != ""
	if refSet {
		if isTopLevel(addr) {
			return command.Fail("Top-level attributes cannot be references")
		}
		if !e.resolveRef(address.KindAttribute, *p.Ref) {
			return command.Fail("Referenced attribute not found: %s", *p.Ref)
		}
	}

	newName := n.Name
	if refSet {
		newName = ""
	}
	if p.Name != nil && *p.Name != "" {
		newName = *p.Name
	}
	if newName != n.Name {
		moved, err := e.tree.Rename(addr, newName)
		if err != nil {
			if errors.Is(err, document.ErrExists) {
				return command.Fail("Duplicate top-level attribute name: %s", newName)
			}
			return command.Fail("%s", err)
		}
		addr = moved
	}

	if p.Ref != nil {
		n.Ref = *p.Ref
		if refSet {
			n.Type = ""
			n.Default = nil
			n.Fixed = nil
		}
	}
	if p.Name != nil && *p.Name != "" {
		n.Ref = ""
	}
	if p.Type != nil {
		n.Type = *p.Type
		if *p.Type != "" {
			n.Ref = ""
		}
	}
	if p.Required != nil {
		n.Required = *p.Required
	}
	if p.Default != nil {
		n.Default = p.Default
		n.Fixed = nil
	}
	if p.Fixed != nil {
		n.Fixed = p.Fixed
		n.Default = nil
	}
	if p.Documentation != nil {
		n.Documentation = *p.Documentation
	}
	return command.OK(map[string]any{"address": addr})
}
