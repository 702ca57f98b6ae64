// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-record-vault/models"
)

// ListPath is the path of the record list.
const ListPath = "/data"

type routeKind int

const (
	routeList routeKind = iota
	routeEditor
)

type route struct {
	kind routeKind
	// id is the editor's path segment: a numeric id or "new".
	id string
}

// EditorPath is the path of the editor for the given id segment.
func EditorPath(id string) string {
	return ListPath + "/" + id
}

// parseRoute resolves a path. Anything that is not an editor path shows
// the list.
func parseRoute(path string) route {
	rest, ok := strings.CutPrefix(strings.TrimRight(path, "/"), ListPath+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return route{kind: routeList}
	}
	return route{kind: routeEditor, id: rest}
}

func (r route) path() string {
	if r.kind == routeEditor {
		return EditorPath(r.id)
	}
	return ListPath
}

func newRecordPath() string {
	return EditorPath(models.NewRecordToken)
}
