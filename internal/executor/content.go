package executor

import (
	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/document"
)

func (e *Executor) addAnnotation(p command.AddAnnotationPayload) command.Response {
	if _, ok := e.tree.Get(p.TargetAddress); !ok {
		return command.Fail("Target node not found: %s", p.TargetAddress)
	}
	addr, err := e.tree.Insert(p.TargetAddress, document.Node{
		Kind:          address.KindAnnotation,
		Documentation: p.Documentation,
		AppInfo:       p.AppInfo,
	})
	if err != nil {
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeAnnotation(p command.RemoveAnnotationPayload) command.Response {
	if _, resp, ok := e.target(command.FamilyAnnotation, p.AnnotationAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.AnnotationAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyAnnotation(p command.ModifyAnnotationPayload) command.Response {
	n, resp, ok := e.target(command.FamilyAnnotation, p.AnnotationAddress)
	if !ok {
		return resp
	}
	if p.Documentation != nil {
		n.Documentation = *p.Documentation
	}
	if p.AppInfo != nil {
		n.AppInfo = *p.AppInfo
	}
	return command.OK(map[string]any{"address": p.AnnotationAddress})
}

func (e *Executor) addDocumentation(p command.AddDocumentationPayload) command.Response {
	if _, ok := e.tree.Get(p.TargetAddress); !ok {
		return command.Fail("Target node not found: %s", p.TargetAddress)
	}
	addr, err := e.tree.Insert(p.TargetAddress, document.Node{
		Kind:     address.KindDocumentation,
		Content:  p.Content,
		Language: p.Language,
	})
	if err != nil {
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeDocumentation(p command.RemoveDocumentationPayload) command.Response {
	if _, resp, ok := e.target(command.FamilyDocumentation, p.DocumentationAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.DocumentationAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyDocumentation(p command.ModifyDocumentationPayload) command.Response {
	n, resp, ok := e.target(command.FamilyDocumentation, p.DocumentationAddress)
	if !ok {
		return resp
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Language != nil {
		n.Language = *p.Language
	}
	return command.OK(map[string]any{"address": p.DocumentationAddress})
}

func (e *Executor) addImport(p command.AddImportPayload) command.Response {
	for _, kid := range e.tree.Children(address.Root) {
		if n, ok := e.tree.Get(kid); ok && n.Kind == address.KindImport && n.Namespace == p.Namespace {
			return command.Fail("Namespace already imported: %s", p.Namespace)
		}
	}
	addr, err := e.tree.Insert(address.Root, document.Node{
		Kind:           address.KindImport,
		Namespace:      p.Namespace,
		SchemaLocation: p.SchemaLocation,
	})
	if err != nil {
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeImport(p command.RemoveImportPayload) command.Response {
	if _, resp, ok := e.target(command.FamilyImport, p.ImportAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.ImportAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyImport(p command.ModifyImportPayload) command.Response {
	n, resp, ok := e.target(command.FamilyImport, p.ImportAddress)
	if !ok {
		return resp
	}
	if p.Namespace != nil {
		n.Namespace = *p.Namespace
	}
	if p.SchemaLocation != nil {
		n.SchemaLocation = *p.SchemaLocation
	}
	return command.OK(map[string]any{"address": p.ImportAddress})
}

func (e *Executor) addInclude(p command.AddIncludePayload) command.Response {
	for _, kid := range e.tree.Children(address.Root) {
		if n, ok := e.tree.Get(kid); ok && n.Kind == address.KindInclude && n.SchemaLocation == p.SchemaLocation {
			return command.Fail("Schema already included: %s", p.SchemaLocation)
		}
	}
	addr, err := e.tree.Insert(address.Root, document.Node{
		Kind:           address.KindInclude,
		SchemaLocation: p.SchemaLocation,
	})
	if err != nil {
		return command.Fail("%s", err)
	}
	return command.Created(addr)
}

func (e *Executor) removeInclude(p command.RemoveIncludePayload) command.Response {
	if _, resp, ok := e.target(command.FamilyInclude, p.IncludeAddress); !ok {
		return resp
	}
	if err := e.tree.Remove(p.IncludeAddress); err != nil {
		return command.Fail("%s", err)
	}
	return command.OK(nil)
}

func (e *Executor) modifyInclude(p command.ModifyIncludePayload) command.Response {
	n, resp, ok := e.target(command.FamilyInclude, p.IncludeAddress)
	if !ok {
		return resp
	}
	if p.SchemaLocation != nil {
		n.SchemaLocation = *p.SchemaLocation
	}
	return command.OK(map[string]any{"address": p.IncludeAddress})
}
