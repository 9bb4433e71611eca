package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

// ArchiveUseCase bundles every photo of one (local, fecha) into a ZIP,
// organized per-section/per-item, plus a plain-text resumen with per-item
// photo counts.
type ArchiveUseCase struct {
	photos ports.PhotoRepository
}

func NewArchiveUseCase(photos ports.PhotoRepository) *ArchiveUseCase {
	return &ArchiveUseCase{photos: photos}
}

func (uc *ArchiveUseCase) BuildArchive(ctx context.Context, local, fecha string) ([]byte, error) {
	photos, err := uc.photos.All(ctx, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("load photos: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	counts := make(map[string]int)
	totalBytes := 0

	for _, p := range photos {
		folder := catalog.SectionFolders[p.Section]
		if folder == "" {
			folder = "sin_clasificar"
		}
		code := strings.ReplaceAll(p.ItemID, ".", "")
		w, err := zw.Create(fmt.Sprintf("%s/%s/%s", folder, code, p.PhotoName))
		if err != nil {
			return nil, fmt.Errorf("create zip entry: %w", err)
		}
		if _, err := w.Write(p.Data); err != nil {
			return nil, fmt.Errorf("write zip entry: %w", err)
		}
		counts[p.ItemID]++
		totalBytes += p.SizeBytes
	}

	summary, err := zw.Create("resumen.txt")
	if err != nil {
		return nil, fmt.Errorf("create resumen entry: %w", err)
	}
	if _, err := summary.Write([]byte(buildResumen(local, fecha, counts, len(photos), totalBytes))); err != nil {
		return nil, fmt.Errorf("write resumen entry: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

func buildResumen(local, fecha string, counts map[string]int, totalPhotos, totalBytes int) string {
	lines := []string{
		"AUDITORÍA — FOTOS CAPTURADAS",
		fmt.Sprintf("Local: %s", orUnset(local)),
		fmt.Sprintf("Fecha: %s", fecha),
		fmt.Sprintf("Generado: %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Fotos totales: %d", totalPhotos),
		fmt.Sprintf("Tamaño total: %s", formatSize(totalBytes)),
		"",
		"DETALLE POR ÍTEM:",
	}
	for _, c := range catalog.All() {
		n := counts[c.ID]
		flag := "SIN FOTOS"
		switch {
		case catalog.NoPhotoItems[c.ID]:
			flag = "NO REQUIERE"
		case n > 0:
			flag = "OK"
		}
		lines = append(lines, fmt.Sprintf("  [%s] %s: %d fotos", flag, c.ID, n))
	}

	extra := make([]string, 0)
	for id := range counts {
		if _, ok := catalog.ByID(id); !ok {
			extra = append(extra, id)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		lines = append(lines, "", "ÍTEMS FUERA DE CATÁLOGO:")
		for _, id := range extra {
			lines = append(lines, fmt.Sprintf("  %s: %d fotos", id, counts[id]))
		}
	}
	return strings.Join(lines, "\n")
}

func orUnset(s string) string {
	if s == "" {
		return "Sin especificar"
	}
	return s
}

func formatSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/(1024*1024*1024))
	}
}
