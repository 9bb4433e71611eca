// Package catalog holds the Grido operational audit checklist (Abril 2025):
// sections, checklist items and their Conforme / Observación / No Conforme
// rubrics, plus the small reference vocabularies the rest of the system keys on.
// Reference data only; nothing here is created or mutated at runtime.
package catalog

import "sort"

type CheckType string

const (
	CheckOperativo CheckType = "OPERATIVO"
	CheckComercial CheckType = "COMERCIAL"
)

// Criterion is one checklist item with its three evaluation rubrics.
type Criterion struct {
	ID          string
	Section     string
	Name        string
	Check       CheckType
	Conforme    string
	Observacion string
	NoConforme  string
}

var Locales = []string{"Edén", "España"}

var Sections = map[string]string{
	"A": "Infraestructura — Estado de conservación y limpieza",
	"B": "Experiencia del cliente",
	"C": "Operatoria diaria",
	"D": "Imagen — Formato y Estética",
	"E": "Oferta y Stock",
}

// SectionFolders maps a section letter to its archive folder name.
var SectionFolders = map[string]string{
	"A": "A_Infraestructura",
	"B": "B_Experiencia",
	"C": "C_Operatoria",
	"D": "D_Imagen",
	"E": "E_Stock",
}

var (
	EstadosDesvio    = []string{"pendiente", "en_proceso", "cumplido", "incumplido"}
	TiposDesvio      = []string{"operativo", "conductual", "estructural"}
	Prioridades      = []string{"alta", "media", "baja"}
	RolesResponsable = []string{"caja", "bodega", "limpieza", "encargada", "otro"}
	TiposAuditoria   = []string{"completa", "parcial", "sorpresa_operativa"}
)

// NoPhotoItems are checklist items audited without photographic evidence.
var NoPhotoItems = map[string]bool{"C.17": true}

func ByID(id string) (Criterion, bool) {
	for _, c := range criteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}

func BySection(section string) []Criterion {
	out := make([]Criterion, 0)
	for _, c := range criteria {
		if c.Section == section {
			out = append(out, c)
		}
	}
	return out
}

func All() []Criterion {
	out := make([]Criterion, len(criteria))
	copy(out, criteria)
	return out
}

func SectionName(section string) string {
	if name, ok := Sections[section]; ok {
		return name
	}
	return section
}

// SectionKeys returns the section letters in order.
func SectionKeys() []string {
	keys := make([]string, 0, len(Sections))
	for k := range Sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func ValidLocal(local string) bool {
	for _, l := range Locales {
		if l == local {
			return true
		}
	}
	return false
}

func ValidRolResponsable(rol string) bool {
	for _, r := range RolesResponsable {
		if r == rol {
			return true
		}
	}
	return false
}
