// fotoproc organizes a folder of raw audit photos into the section/item
// layout and compresses each image on the way. Files that cannot be matched
// to a checklist item land in sin_clasificar/ for manual sorting.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/infrastructure/imaging"
	"github.com/heladerias/audit-vision/internal/infrastructure/storage/localfs"
	"github.com/heladerias/audit-vision/internal/observability/logging"
)

// itemPattern matches filenames like "B4 mesas.jpg" or "a12-stock.png".
var itemPattern = regexp.MustCompile(`^([A-Ea-e])(\d{1,2})`)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

const unclassifiedDir = "sin_clasificar"

func main() {
	input := flag.String("input", "", "directory with raw photos")
	output := flag.String("output", "", "directory for the organized tree")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := logging.NewTextLogger(os.Stderr, *level)
	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: fotoproc -input <dir> -output <dir>")
		os.Exit(2)
	}

	if err := run(*input, *output, logger); err != nil {
		logger.Error("fotoproc failed", "error", err)
		os.Exit(1)
	}
}

func run(input, output string, logger *slog.Logger) error {
	entries, err := os.ReadDir(input)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	store, err := localfs.New(output)
	if err != nil {
		return err
	}
	compressor := imaging.NewCompressor()
	placed := map[string]int{}
	var unclassified []string

	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		data, err := os.ReadFile(filepath.Join(input, entry.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		compressed, err := compressor.Compress(data)
		if err != nil {
			logger.Warn("skipping unreadable image", "file", entry.Name(), "error", err)
			unclassified = append(unclassified, entry.Name())
			if err := store.Save(filepath.Join(unclassifiedDir, entry.Name()), data); err != nil {
				return err
			}
			continue
		}

		itemID, ok := matchItem(entry.Name())
		if !ok {
			logger.Info("no item match", "file", entry.Name())
			unclassified = append(unclassified, entry.Name())
			if err := store.Save(filepath.Join(unclassifiedDir, entry.Name()), compressed); err != nil {
				return err
			}
			continue
		}

		criterion, ok := catalog.ByID(itemID)
		if !ok {
			logger.Info("unknown item code", "file", entry.Name(), "item", itemID)
			unclassified = append(unclassified, entry.Name())
			if err := store.Save(filepath.Join(unclassifiedDir, entry.Name()), compressed); err != nil {
				return err
			}
			continue
		}

		placed[itemID]++
		key := placementKey(criterion, placed[itemID])
		if err := store.Save(key, compressed); err != nil {
			return err
		}
		logger.Debug("placed", "file", entry.Name(), "item", itemID, "as", key)
	}

	if err := store.Save("resumen.txt", resumen(placed, unclassified)); err != nil {
		return err
	}
	logger.Info("done", "placed", len(placed), "sin_clasificar", len(unclassified))
	return nil
}

// placementKey mirrors the audit archive layout: section folder, dotless
// item folder, sequential dotless filename.
func placementKey(criterion catalog.Criterion, seq int) string {
	code := strings.ReplaceAll(criterion.ID, ".", "")
	return filepath.Join(catalog.SectionFolders[criterion.Section], code, fmt.Sprintf("%s_%03d.jpg", code, seq))
}

func matchItem(filename string) (string, bool) {
	m := itemPattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s.%s", strings.ToUpper(m[1]), m[2]), true
}

func resumen(placed map[string]int, unclassified []string) []byte {
	var b strings.Builder
	b.WriteString("RESUMEN DE PROCESAMIENTO\n")
	b.WriteString("========================\n\n")

	items := make([]string, 0, len(placed))
	for itemID := range placed {
		items = append(items, itemID)
	}
	sort.Strings(items)
	for _, itemID := range items {
		fmt.Fprintf(&b, "%s: %d foto(s)\n", itemID, placed[itemID])
	}

	if len(unclassified) > 0 {
		b.WriteString("\nSIN CLASIFICAR:\n")
		for _, name := range unclassified {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}

	return []byte(b.String())
}
