package cartridge

import "testing"

// buildLoROM constructs a minimal valid LoROM image with a correct
// checksum/complement pair at 0x7FC0.
func buildLoROM(title string, size int) []byte {
	rom := make([]byte, size)
	hdr := rom[loROMHeaderOffset : loROMHeaderOffset+headerSize]
	copy(hdr[titleOffset:], title)
	for i := len(title); i < titleLen; i++ {
		hdr[titleOffset+i] = ' '
	}
	hdr[mapModeOffset] = 0x20 // LoROM, slow
	hdr[cartTypeOffset] = 0x00
	hdr[romSizeOffset] = 0x08 // 1024 << 8 = 256KiB
	hdr[sramSizeOffset] = 0x00
	hdr[regionOffset] = 0x01 // North America

	checksum := uint16(0x1234)
	complement := checksum ^ 0xFFFF
	hdr[checksumCOffset] = byte(complement)
	hdr[checksumCOffset+1] = byte(complement >> 8)
	hdr[checksumOffset] = byte(checksum)
	hdr[checksumOffset+1] = byte(checksum >> 8)

	return rom
}

func TestFromBytes_LoROMHeaderScoring(t *testing.T) {
	rom := buildLoROM("TEST ROM", 0x8000)

	cart, err := FromBytes(rom)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}

	if cart.MappingMode() != LoROM {
		t.Errorf("MappingMode() = %v, want LoROM", cart.MappingMode())
	}
	if cart.Title() != "TEST ROM" {
		t.Errorf("Title() = %q, want %q", cart.Title(), "TEST ROM")
	}
	if cart.Region() != RegionNorthAmerica {
		t.Errorf("Region() = %v, want RegionNorthAmerica", cart.Region())
	}
	if cart.SramSizeBytes() != 0 {
		t.Errorf("SramSizeBytes() = %d, want 0", cart.SramSizeBytes())
	}
	if cart.RomSizeBytes() != 1024<<8 {
		t.Errorf("RomSizeBytes() = %d, want %d", cart.RomSizeBytes(), 1024<<8)
	}
}

func TestFromBytes_StripsCopierHeader(t *testing.T) {
	inner := buildLoROM("COPIER TEST", 0x8000)
	withCopier := append(make([]byte, copierHeaderSize), inner...)

	if len(withCopier)%1024 != copierHeaderSize {
		t.Fatalf("test fixture does not trigger copier-header detection")
	}

	cart, err := FromBytes(withCopier)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if cart.Title() != "COPIER TEST" {
		t.Errorf("Title() = %q, want %q", cart.Title(), "COPIER TEST")
	}
	if len(cart.RomBytes())%1024 != 0 {
		t.Errorf("stripped ROM length %d is not a multiple of 1024", len(cart.RomBytes()))
	}
}

func TestFromBytes_TooSmallFails(t *testing.T) {
	_, err := FromBytes(make([]byte, 0x100))
	if err == nil {
		t.Fatal("expected HeaderError for undersized image")
	}
	var headerErr *HeaderError
	if _, ok := err.(*HeaderError); !ok {
		t.Errorf("error = %T, want *HeaderError (%v)", err, headerErr)
	}
}

func TestCartridgeType_Coprocessor(t *testing.T) {
	rom := buildLoROM("DSP TEST", 0x8000)
	hdr := rom[loROMHeaderOffset : loROMHeaderOffset+headerSize]
	hdr[cartTypeOffset] = 0x03 // low nibble 3 -> coprocessor, hi nibble 0 -> DSP1
	checksum := uint16(hdr[checksumOffset]) | uint16(hdr[checksumOffset+1])<<8
	complement := checksum ^ 0xFFFF
	hdr[checksumCOffset] = byte(complement)
	hdr[checksumCOffset+1] = byte(complement >> 8)

	cart, err := FromBytes(rom)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if cart.CartridgeType() != TypeROMCoprocessor {
		t.Errorf("CartridgeType() = %v, want TypeROMCoprocessor", cart.CartridgeType())
	}
	if cart.Coprocessor() != CoprocessorDSP1 {
		t.Errorf("Coprocessor() = %v, want CoprocessorDSP1", cart.Coprocessor())
	}
}

func TestSRAM_RoundTrip(t *testing.T) {
	rom := buildLoROM("SRAM TEST", 0x8000)
	hdr := rom[loROMHeaderOffset : loROMHeaderOffset+headerSize]
	hdr[sramSizeOffset] = 0x01 // 2KiB
	checksum := uint16(hdr[checksumOffset]) | uint16(hdr[checksumOffset+1])<<8
	complement := checksum ^ 0xFFFF
	hdr[checksumCOffset] = byte(complement)
	hdr[checksumCOffset+1] = byte(complement >> 8)

	cart, err := FromBytes(rom)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if cart.SramSizeBytes() != 2048 {
		t.Fatalf("SramSizeBytes() = %d, want 2048", cart.SramSizeBytes())
	}

	data := make([]byte, 2048)
	for i := range data {
		data[i] = uint8(i)
	}
	if err := cart.LoadSRAM(data); err != nil {
		t.Fatalf("LoadSRAM() error = %v", err)
	}
	saved := cart.SaveSRAM()
	for i := range data {
		if saved[i] != data[i] {
			t.Fatalf("SRAM byte %d = %d, want %d", i, saved[i], data[i])
		}
	}
}
