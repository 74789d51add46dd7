package cmd

import (
	"fmt"

	"github.com/crgrady/tablescope/internal/dataset"
)

// parseDelimiter maps a flag/config value to a CSV separator rune.
// Empty means sniff from the file.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// loadDataset loads the given CSV path honoring global config and flags.
func loadDataset(path string) (*dataset.Dataset, error) {
	opt := dataset.DefaultOptions()
	if cfg != nil {
		delim, err := parseDelimiter(cfg.Delimiter)
		if err != nil {
			return nil, err
		}
		opt.Delimiter = delim
		if cfg.MaxRows > 0 {
			opt.MaxRows = cfg.MaxRows
		}
	}
	return dataset.Load(path, opt)
}
