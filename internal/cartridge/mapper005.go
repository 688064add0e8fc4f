package cartridge

// Mapper005 implements a partial MMC5 (ExROM): PRG/CHR bank switching in
// the board's most common configuration (8KB PRG windows, 1KB CHR
// windows). MMC5's extended attribute table, split-screen rendering, and
// expansion audio are not implemented — no mapper in the corpus or spec
// exercises them, and they would roughly double this file's size for
// behavior no target ROM needs.
type Mapper005 struct {
	NoIRQ
	cart *Cartridge

	prgMode uint8
	chrMode uint8

	prgBank [4]uint8 // 8KB windows at $8000,$A000,$C000,$E000
	chrBank [8]uint8

	prgRAMProtect1 uint8
	prgRAMProtect2 uint8

	mirroring uint8 // raw $5105 nametable control, 2 bits per quadrant
}

func NewMapper005(cart *Cartridge) *Mapper005 {
	m := &Mapper005{cart: cart, prgMode: 3, chrMode: 3}
	m.prgBank[3] = 0x80 | uint8(len(cart.prgROM)/0x2000-1)
	return m
}

func (m *Mapper005) prgBanks8K() uint8 {
	n := uint8(len(m.cart.prgROM) / 0x2000)
	if n == 0 {
		return 1
	}
	return n
}

func (m *Mapper005) ReadPRG(address uint16) uint8 {
	if address >= 0x5000 && address < 0x6000 {
		return 0 // MMC5 audio/extended registers, read as open bus here
	}
	if address >= 0x6000 && address < 0x8000 {
		return m.cart.sram[address-0x6000]
	}
	if address < 0x8000 {
		return 0
	}
	window := (address - 0x8000) / 0x2000
	reg := m.prgBank[window]
	isROM := reg&0x80 != 0
	bank := reg & 0x7F
	offset := (address - 0x8000) % 0x2000
	if !isROM {
		return m.cart.sram[int(bank%8)*0x2000+int(offset)%len(m.cart.sram)]
	}
	off := int(bank%m.prgBanks8K())*0x2000 + int(offset)
	if off >= len(m.cart.prgROM) {
		return 0
	}
	return m.cart.prgROM[off]
}

func (m *Mapper005) WritePRG(address uint16, value uint8) {
	switch {
	case address == 0x5100:
		m.prgMode = value & 0x03
	case address == 0x5101:
		m.chrMode = value & 0x03
	case address == 0x5105:
		m.mirroring = value
	case address >= 0x5113 && address <= 0x5117:
		m.prgBank[address-0x5113] = value
	case address >= 0x5120 && address <= 0x5127:
		m.chrBank[address-0x5120] = value
	case address >= 0x6000 && address < 0x8000:
		m.cart.sram[address-0x6000] = value
	}
}

func (m *Mapper005) chrBanks1K() uint8 {
	n := uint8(len(m.cart.chrROM) / 0x0400)
	if n == 0 {
		return 1
	}
	return n
}

func (m *Mapper005) ReadCHR(address uint16) uint8 {
	if address >= 0x2000 {
		return 0
	}
	window := address / 0x0400
	if int(window) >= len(m.chrBank) {
		window = uint16(len(m.chrBank) - 1)
	}
	bank := m.chrBank[window] % m.chrBanks1K()
	off := int(bank)*0x0400 + int(address%0x0400)
	if off >= len(m.cart.chrROM) {
		return 0
	}
	return m.cart.chrROM[off]
}

func (m *Mapper005) WriteCHR(address uint16, value uint8) {
	if address >= 0x2000 || !m.cart.hasCHRRAM {
		return
	}
	window := address / 0x0400
	if int(window) >= len(m.chrBank) {
		return
	}
	bank := m.chrBank[window] % m.chrBanks1K()
	off := int(bank)*0x0400 + int(address%0x0400)
	if off < len(m.cart.chrROM) {
		m.cart.chrROM[off] = value
	}
}
