package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"vosummary/pkg/engine"
	"vosummary/pkg/parser"
	"vosummary/pkg/schema"
)

// BuildSummary loads the catalogs and every VO file under indir and
// builds the VOSummary tree. contactsFile may be empty or point at a
// file that does not exist — contact enrichment simply never triggers
// then. The reporting-groups catalog is mandatory.
//
// When a VO record fails expansion its raw data is dumped to stderr
// for diagnosis and the error propagates; there is no partial output.
func BuildSummary(indir, contactsFile string, authorized bool) (*schema.Mapping, error) {
	var contactsTable *schema.Mapping
	if contactsFile != "" {
		table, err := parser.ParseFile(contactsFile)
		switch {
		case err == nil:
			contactsTable = table
		case errors.Is(err, os.ErrNotExist):
			// No contacts directory: unauthorized-style output.
		default:
			return nil, fmt.Errorf("contacts table: %w", err)
		}
	}

	reportingGroups, err := parser.ParseFile(filepath.Join(indir, parser.ReportingGroupsFile))
	if err != nil {
		return nil, fmt.Errorf("reporting-groups catalog: %w", err)
	}

	voData := engine.NewVOData(contactsTable, reportingGroups)

	files, err := parser.ListVOFiles(indir)
	if err != nil {
		return nil, fmt.Errorf("listing VO files: %w", err)
	}
	for _, file := range files {
		vo, err := parser.ParseFile(file)
		if err != nil {
			return nil, err
		}
		voData.AddVO(vo)
	}

	tree, err := voData.GetTree(authorized)
	if err != nil {
		var expandErr *engine.ExpandError
		if errors.As(err, &expandErr) {
			fmt.Fprintf(os.Stderr, "offending VO record:\n")
			spew.Fdump(os.Stderr, expandErr.Record)
		}
		return nil, err
	}
	return tree, nil
}

// BuildSummaryXML runs BuildSummary and serializes the tree.
func BuildSummaryXML(indir, contactsFile string, authorized bool) (string, error) {
	tree, err := BuildSummary(indir, contactsFile, authorized)
	if err != nil {
		return "", err
	}
	return RenderXML(tree)
}
