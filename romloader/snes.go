package romloader

import "fmt"

// SNESExtensions lists the cartridge file extensions the loader
// recognizes, in preference order.
var SNESExtensions = []string{".sfc", ".smc", ".swc", ".fig"}

// copierHeaderSize is the length of the header some copier devices
// prepend to ROM dumps.
const copierHeaderSize = 512

// HasCopierHeader reports whether a ROM image carries a copier header.
// SNES ROM data comes in 32KB banks; a dump whose length is off by
// exactly 512 bytes was written by a copier.
func HasCopierHeader(rom []byte) bool {
	return len(rom) > copierHeaderSize && len(rom)%32768 == copierHeaderSize
}

// StripCopierHeader removes the copier header if present, returning
// the bare ROM image. Unheadered images pass through unchanged.
func StripCopierHeader(rom []byte) []byte {
	if HasCopierHeader(rom) {
		return rom[copierHeaderSize:]
	}
	return rom
}

// LoadCartridge loads an SNES ROM from path, extracting from archives
// as needed and stripping any copier header.
func LoadCartridge(path string) ([]byte, string, error) {
	data, name, err := Load(path, SNESExtensions)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty ROM image: %s", name)
	}
	return StripCopierHeader(data), name, nil
}
