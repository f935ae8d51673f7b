package legacy

import (
	"github.com/rbatools/rbaconv/internal/filesystem"
	"github.com/rbatools/rbaconv/pkg/rba"
)

// ReadMedium reads the tab-separated medium definition. The medium carries
// over unchanged; metabolite names in it are not normalized.
func ReadMedium(provider filesystem.Provider, dir string) (rba.Medium, error) {
	data, err := readInput(provider, dir, rba.MediumFile)
	if err != nil {
		return nil, err
	}
	return rba.ParseMedium(data)
}
