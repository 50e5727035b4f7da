package client

import (
	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/api"
	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Payloads
	Fields = types.Fields
	File   = types.File

	// Responses
	Response   = types.Response
	Page       = types.Page
	Statistics = types.Statistics

	// Resource helpers
	Resource           = api.Resource
	ExportableResource = api.ExportableResource
	FormResource       = api.FormResource
	UserResource       = api.UserResource
)
