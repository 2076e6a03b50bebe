// Package batch walks a month-organized document tree and parses every PDF
// in it. The expected layout is root/YYYYMM/RE for invoices and
// root/YYYYMM/GS for credit notes; anything else under root is ignored.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/saleemayman/carpet-invoices/internal/model"
	"github.com/saleemayman/carpet-invoices/internal/parser"
)

var monthFolderPattern = regexp.MustCompile(`^20[0-9]{4}$`)

// SourceFolder is one discovered document folder.
type SourceFolder struct {
	Path string // absolute or root-relative path on disk
	Rel  string // folder key, e.g. "202101/RE"
	Type model.DocumentType
}

// Discover lists the document folders under root in lexical order. A month
// directory may carry either or both of the RE and GS subfolders.
func Discover(root string) ([]SourceFolder, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading document root %s: %w", root, err)
	}

	var folders []SourceFolder
	for _, entry := range entries {
		if !entry.IsDir() || !monthFolderPattern.MatchString(entry.Name()) {
			continue
		}
		for _, sub := range []string{"RE", "GS"} {
			path := filepath.Join(root, entry.Name(), sub)
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
			rel := entry.Name() + "/" + sub
			folders = append(folders, SourceFolder{
				Path: path,
				Rel:  rel,
				Type: parser.DocumentTypeForFolder(rel),
			})
		}
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Rel < folders[j].Rel })
	return folders, nil
}

// ListPDFs returns the PDF filenames directly inside folder, sorted. Other
// file types (the combined CSV output included) are skipped.
func ListPDFs(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", folder, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
