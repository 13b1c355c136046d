package domain

import "strings"

// Status is one of the backend's fixed lifecycle identifiers. The tokens are
// opaque UUIDs; the backend emits them in mixed case, so comparisons go
// through Normalize.
type Status string

const (
	StatusProcessing Status = "6EB91343-C1DD-4FE0-AD42-FD479D5575F2"
	StatusRejected   Status = "52315DBF-5E49-49F2-BE80-38CBF6B67ABB"
	StatusPacking    Status = "659D4B1D-BEB3-4712-A9D4-5E2843DEE02E"
	StatusDelivered  Status = "6AA9A583-2A34-4934-B486-67498ADAE396"
	StatusShipped    Status = "21E10D91-9411-47F6-BC35-7B4EC923AE3B"
	StatusDelayed    Status = "F9B390AB-318C-4BC7-8C0D-A8D9284777E0"
	StatusInactive   Status = "32A4E9A3-2255-4EF7-8440-A837E671641E"
	StatusActive     Status = "F190BE66-3B22-4E7D-85FC-C9C79E908642"
)

var statusLabels = map[Status]string{
	StatusProcessing: "Procesando",
	StatusRejected:   "Rechazado",
	StatusPacking:    "Empacando",
	StatusDelivered:  "Entregado",
	StatusShipped:    "Enviado",
	StatusDelayed:    "Atrasado",
	StatusInactive:   "Inactivo",
	StatusActive:     "Activo",
}

// NormalizeStatus upper-cases a raw status token so lookups work regardless
// of the case the backend (or a stored order) used.
func NormalizeStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

// Label returns the human name for a status, or "Desconocido" for tokens the
// client does not know.
func (s Status) Label() string {
	if l, ok := statusLabels[NormalizeStatus(string(s))]; ok {
		return l
	}
	return "Desconocido"
}
