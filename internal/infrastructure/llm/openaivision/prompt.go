package openaivision

import (
	"fmt"
	"strings"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/domain"
)

const systemPrompt = `Sos un auditor experto de franquicias Grido (heladerías). Tu tarea es analizar fotografías del local y evaluar si cumplen con los criterios de la guía de auditoría operativa. Para cada foto, debés determinar si el ítem auditado está:

- **Conforme**: cumple con todos los requisitos.
- **Observación**: presenta desvíos leves que no comprometen la imagen ni la seguridad.
- **No Conforme**: presenta defectos graves, visibles, o que comprometen la seguridad/higiene.

Respondé SIEMPRE en formato JSON con esta estructura exacta:
{
  "status": "Conforme" | "Observación" | "No Conforme",
  "justificacion": "Explicación breve de por qué se asigna ese estado, haciendo referencia a lo que se observa en la foto.",
  "detalles_observados": ["detalle 1", "detalle 2", ...],
  "recomendaciones": ["recomendación 1", ...]
}

Sé riguroso pero justo. Si la foto no permite evaluar claramente el ítem, indicalo en la justificación y asigná "Observación" por precaución. No inventes lo que no se ve; solo evaluá lo visible en la imagen.

IMPORTANTE: Cuando el auditor humano haya corregido evaluaciones anteriores tuyas sobre este mismo ítem, se te proporcionarán como ejemplos de referencia. Prestá mucha atención a esas correcciones: reflejan el criterio real del auditor y debés ajustar tu evaluación para ser consistente con ese criterio. Si la IA evaluó "Observación" pero el auditor corrigió a "No Conforme", eso significa que debés ser más estricto en casos similares.`

func buildUserPrompt(criterion catalog.Criterion, corrections []domain.Correction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Ítem a evaluar: %s — %s\n\n", criterion.ID, criterion.Name)
	fmt.Fprintf(&b, "**Criterios de CONFORME:**\n%s\n\n", criterion.Conforme)
	fmt.Fprintf(&b, "**Criterios de OBSERVACIÓN:**\n%s\n\n", criterion.Observacion)
	fmt.Fprintf(&b, "**Criterios de NO CONFORME:**\n%s\n\n", criterion.NoConforme)
	b.WriteString(buildCorrectionsContext(corrections))
	b.WriteString(
		"\nAnalizá la siguiente fotografía y evaluá si el ítem está Conforme, " +
			"Observación o No Conforme. Respondé en JSON.")
	return b.String()
}

// buildCorrectionsContext renders past auditor overrides as few-shot examples
// that bias the verdict toward the human criterion.
func buildCorrectionsContext(corrections []domain.Correction) string {
	if len(corrections) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(
		"\n## Correcciones previas del auditor humano para este ítem\n" +
			"Usá estos ejemplos como referencia para calibrar tu evaluación:\n\n")
	for i, c := range corrections {
		fmt.Fprintf(&b,
			"**Ejemplo %d:** La IA evaluó **%s** pero el auditor corrigió a **%s**.\n"+
				"- Justificación IA: %s\n"+
				"- Nota del auditor: %s\n\n",
			i+1, c.AIStatus, c.CorrectedStatus,
			orDash(c.AIJustificacion), orDash(c.CorrectionNotes),
		)
	}
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
