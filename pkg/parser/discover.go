package parser

import (
	"path/filepath"
	"sort"

	zglob "github.com/mattn/go-zglob"
)

// ReportingGroupsFile is the one file in the input directory that is a
// catalog rather than a VO record.
const ReportingGroupsFile = "REPORTING_GROUPS.yaml"

// ListVOFiles enumerates the per-VO YAML files under indir, excluding
// the reporting-groups catalog. The result is sorted so that output VO
// order does not depend on platform directory-listing order.
func ListVOFiles(indir string) ([]string, error) {
	matches, err := zglob.Glob(filepath.Join(indir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(matches))
	for _, path := range matches {
		if filepath.Base(path) == ReportingGroupsFile {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}
