package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Messages shown to users, matching the backend's web UI.
const (
	MsgValidation  = "Datos inválidos"
	MsgAuth        = "No autorizado"
	MsgPermission  = "Sin permisos"
	MsgNotFound    = "Recurso no encontrado"
	MsgConflict    = "Conflicto en los datos"
	MsgServer      = "Error interno del servidor"
	MsgUnknownBody = "Error desconocido"
	msgNetworkFmt  = "Error de conexión: %s"
	msgConfigFmt   = "Error de configuración: %s"
	msgUnknownFmt  = "Error %d: %s"
)

// ClassifyStatus maps a response status code onto a kind and message.
// The body is consulted only for unmapped statuses, where a server-supplied
// "message" field is surfaced.
func ClassifyStatus(statusCode int, body []byte) (Kind, string) {
	switch statusCode {
	case 400:
		return Validation, MsgValidation
	case 401:
		return Auth, MsgAuth
	case 403:
		return Permission, MsgPermission
	case 404:
		return NotFound, MsgNotFound
	case 409:
		return Conflict, MsgConflict
	case 500:
		return Server, MsgServer
	default:
		msg := ServerMessage(body)
		if msg == "" {
			msg = MsgUnknownBody
		}
		return Unknown, fmt.Sprintf(msgUnknownFmt, statusCode, msg)
	}
}

// NetworkMessage formats the message for a dispatched request without response.
func NetworkMessage(err error) string { return fmt.Sprintf(msgNetworkFmt, errText(err)) }

// ConfigMessage formats the message for a request that could not be formed.
func ConfigMessage(err error) string { return fmt.Sprintf(msgConfigFmt, errText(err)) }

// ServerMessage extracts a top-level "message" string from a JSON body.
func ServerMessage(body []byte) string {
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	s, ok := payload.Message.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// DecodeDetails returns the body as decoded JSON, falling back to the raw
// text when it is not JSON. An empty body yields nil.
func DecodeDetails(body []byte) any {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return trimmed
	}
	return v
}

func errText(err error) string {
	if err == nil {
		return "error desconocido"
	}
	return err.Error()
}
