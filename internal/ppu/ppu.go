// Package ppu implements the Picture Processing Unit for the NES.
package ppu

import "nescore/internal/memory"

// PPU represents the NES Picture Processing Unit (2C02). The background
// pipeline is a shift-register pipeline (pattern + attribute shifters fed by
// an 8-cycle nametable/attribute/pattern fetch sequence) rather than a
// per-pixel direct memory lookup, so that scroll/pattern changes made
// mid-scanline take effect at the correct pixel instead of the whole
// scanline at once.
type PPU struct {
	// PPU Registers (CPU-visible)
	ppuCtrl   uint8 // $2000 - PPUCTRL
	ppuMask   uint8 // $2001 - PPUMASK
	ppuStatus uint8 // $2002 - PPUSTATUS
	oamAddr   uint8 // $2003 - OAMADDR

	// Internal "loopy" scrolling state
	v uint16 // Current VRAM address (15 bits)
	t uint16 // Temporary VRAM address (15 bits) - address latch
	x uint8  // Fine X scroll (3 bits)
	w bool   // Write latch (toggles between first/second write)

	// PPU Memory
	memory *memory.PPUMemory

	// Rendering State
	scanline   int // Current scanline (-1 to 260)
	cycle      int // Current cycle (0 to 340)
	frameCount uint64
	oddFrame   bool
	readBuffer uint8 // PPU read buffer for $2007

	// Background fetch/shift pipeline
	nextTileID  uint8
	nextAttr    uint8
	nextTileLo  uint8
	nextTileHi  uint8
	bgPatternLo uint16
	bgPatternHi uint16
	bgAttribLo  uint16
	bgAttribHi  uint16

	// Sprite Data
	oam                    [256]uint8 // Object Attribute Memory
	secondaryOAM           [32]uint8  // Secondary OAM for the next scanline
	spriteIndexes          [8]uint8   // Original OAM index of each secondary-OAM slot
	spriteCount            uint8      // Number of sprites evaluated for the next scanline
	spriteXCounters        [8]uint8   // Per-slot X countdown before the shifters start moving
	spriteAttributes       [8]uint8   // Per-slot attribute byte
	spritePatternShifterLo [8]uint8
	spritePatternShifterHi [8]uint8
	sprite0Possible        bool // True if sprite 0 was placed in secondary OAM this scanline
	sprite0Rendered        bool // True once sprite 0's pixel has actually been drawn opaque

	// Frame Buffer
	frameBuffer [256 * 240]uint32 // RGB frame buffer

	// Callbacks
	nmiCallback           func()
	frameCompleteCallback func()

	// Rendering Control
	backgroundEnabled bool
	spritesEnabled    bool
	renderingEnabled  bool

	// Timing
	cycleCount uint64
}

// New creates a new PPU instance
func New() *PPU {
	return &PPU{
		scanline:   -1, // Start at pre-render scanline
		cycle:      0,
		frameCount: 0,
		oddFrame:   false,
	}
}

// Reset resets the PPU to initial state
func (p *PPU) Reset() {
	p.ppuCtrl = 0
	p.ppuMask = 0
	p.ppuStatus = 0xA0 // VBL flag set, sprite overflow and sprite 0 hit clear
	p.oamAddr = 0

	p.v = 0
	p.t = 0
	p.x = 0
	p.w = false

	p.scanline = -1
	p.cycle = 0
	p.frameCount = 0
	p.oddFrame = false
	p.readBuffer = 0

	p.nextTileID, p.nextAttr, p.nextTileLo, p.nextTileHi = 0, 0, 0, 0
	p.bgPatternLo, p.bgPatternHi, p.bgAttribLo, p.bgAttribHi = 0, 0, 0, 0

	p.spriteCount = 0
	p.sprite0Possible = false
	p.sprite0Rendered = false
	for i := range p.spriteXCounters {
		p.spriteXCounters[i] = 0
		p.spriteAttributes[i] = 0
		p.spritePatternShifterLo[i] = 0
		p.spritePatternShifterHi[i] = 0
	}

	p.backgroundEnabled = false
	p.spritesEnabled = false
	p.renderingEnabled = false

	p.cycleCount = 0

	for i := range p.oam {
		p.oam[i] = 0
	}
	for i := range p.frameBuffer {
		p.frameBuffer[i] = 0x000000
	}
}

// SetMemory sets the PPU memory interface
func (p *PPU) SetMemory(memory *memory.PPUMemory) {
	p.memory = memory
}

// SetNMICallback sets the NMI callback function
func (p *PPU) SetNMICallback(callback func()) {
	p.nmiCallback = callback
}

// SetFrameCompleteCallback sets the frame complete callback
func (p *PPU) SetFrameCompleteCallback(callback func()) {
	p.frameCompleteCallback = callback
}

// ReadRegister reads from a PPU register (CPU $2000-$2007)
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case 0x2002: // PPUSTATUS
		status := p.ppuStatus
		p.ppuStatus &= 0x7F // Clear VBL flag only; sprite flags clear at pre-render
		p.w = false
		return status
	case 0x2004: // OAMDATA
		return p.oam[p.oamAddr]
	case 0x2007: // PPUDATA
		return p.readPPUData()
	default: // CTRL/MASK/OAMADDR/SCROLL/ADDR are write-only
		return p.ppuStatus & 0x1F
	}
}

// WriteRegister writes to a PPU register (CPU $2000-$2007)
func (p *PPU) WriteRegister(address uint16, value uint8) {
	switch address {
	case 0x2000: // PPUCTRL
		p.ppuCtrl = value
		p.t = (p.t & 0xF3FF) | ((uint16(value) & 0x03) << 10) // Nametable select
		p.updateRenderingFlags()
		p.checkNMI()
	case 0x2001: // PPUMASK
		p.ppuMask = value
		p.updateRenderingFlags()
	case 0x2002: // PPUSTATUS - read only, writes ignored
	case 0x2003: // OAMADDR
		p.oamAddr = value
	case 0x2004: // OAMDATA
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 0x2005: // PPUSCROLL
		p.writePPUScroll(value)
	case 0x2006: // PPUADDR
		p.writePPUAddr(value)
	case 0x2007: // PPUDATA
		p.writePPUData(value)
	}
}

// WriteOAM writes to OAM at the specified address (for DMA)
func (p *PPU) WriteOAM(address uint8, value uint8) {
	p.oam[address] = value
}

// Step advances the PPU by exactly one PPU dot.
func (p *PPU) Step() {
	p.cycleCount++

	// The pre-render scanline's cycle 0 is skipped on odd frames while
	// rendering is enabled, shortening that frame by one PPU dot.
	if p.scanline == 0 && p.cycle == 0 && p.oddFrame && p.renderingEnabled {
		p.cycle = 1
	}

	if p.scanline >= -1 && p.scanline < 240 {
		p.stepBackground()
		p.stepSprites()
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.ppuStatus |= 0x80
		if p.ppuCtrl&0x80 != 0 && p.nmiCallback != nil {
			p.nmiCallback()
		}
	}

	if p.scanline >= 0 && p.scanline < 240 && p.cycle >= 1 && p.cycle <= 256 {
		p.drawPixel(p.cycle-1, p.scanline)
	}

	p.advance()
}

// advance moves the cycle/scanline/frame counters forward by one dot.
func (p *PPU) advance() {
	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frameCount++
			p.oddFrame = !p.oddFrame
			if p.frameCompleteCallback != nil {
				p.frameCompleteCallback()
			}
		}
	}
}

// stepBackground runs the nametable/attribute/pattern fetch pipeline and
// advances the background shift registers.
func (p *PPU) stepBackground() {
	if p.scanline == -1 && p.cycle == 1 {
		p.ppuStatus &= 0x7F // Clear VBL flag at pre-render
	}

	inFetchWindow := (p.cycle >= 2 && p.cycle <= 257) || (p.cycle >= 321 && p.cycle <= 337)
	if inFetchWindow {
		p.shiftBackground()

		switch (p.cycle - 1) % 8 {
		case 0:
			p.loadBackgroundShifters()
			addr := 0x2000 | (p.v & 0x0FFF)
			p.nextTileID = p.memory.Read(addr)
		case 2:
			addr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
			attr := p.memory.Read(addr)
			if p.getCoarseY()&0x02 != 0 {
				attr >>= 4
			}
			if p.getCoarseX()&0x02 != 0 {
				attr >>= 2
			}
			p.nextAttr = attr & 0x03
		case 4:
			base := uint16(0)
			if p.ppuCtrl&0x10 != 0 {
				base = 0x1000
			}
			addr := base + uint16(p.nextTileID)*16 + uint16(p.getFineY())
			p.nextTileLo = p.memory.Read(addr)
		case 6:
			base := uint16(0)
			if p.ppuCtrl&0x10 != 0 {
				base = 0x1000
			}
			addr := base + uint16(p.nextTileID)*16 + uint16(p.getFineY()) + 8
			p.nextTileHi = p.memory.Read(addr)
		case 7:
			if p.renderingEnabled {
				p.incrementX()
			}
		}
	}

	if p.cycle == 256 && p.renderingEnabled {
		p.incrementY()
	}

	if p.cycle == 257 {
		p.loadBackgroundShifters()
		if p.renderingEnabled {
			p.copyX()
		}
	}

	if (p.cycle == 337 || p.cycle == 339) && p.memory != nil {
		addr := 0x2000 | (p.v & 0x0FFF)
		p.nextTileID = p.memory.Read(addr)
	}

	if p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304 && p.renderingEnabled {
		p.copyY()
	}
}

// stepSprites handles secondary-OAM clearing/evaluation, pattern loading,
// and the per-cycle sprite shifter advance.
func (p *PPU) stepSprites() {
	if p.scanline == -1 && p.cycle == 1 {
		p.ppuStatus &= 0x9F // Clear sprite overflow and sprite 0 hit at pre-render
		p.clearSpriteShifters()
	}

	if p.scanline >= 0 {
		if p.cycle == 1 {
			p.spriteCount = 0
			p.sprite0Possible = false
			for i := range p.secondaryOAM {
				p.secondaryOAM[i] = 0xFF
			}
			for i := range p.spriteIndexes {
				p.spriteIndexes[i] = 0xFF
			}
		}

		if p.cycle == 65 {
			p.evaluateSprites()
		}

		if p.cycle == 257 {
			p.loadSprites()
		}
	}

	if p.spritesEnabled && p.cycle >= 1 && p.cycle < 258 {
		for i := 0; i < int(p.spriteCount); i++ {
			if p.spriteXCounters[i] > 0 {
				p.spriteXCounters[i]--
			} else {
				p.spritePatternShifterLo[i] <<= 1
				p.spritePatternShifterHi[i] <<= 1
			}
		}
	}
}

// shiftBackground advances the background pattern/attribute shifters by one
// bit; called once per fetch-window cycle when rendering is enabled.
func (p *PPU) shiftBackground() {
	if !p.backgroundEnabled {
		return
	}
	p.bgPatternLo <<= 1
	p.bgPatternHi <<= 1
	p.bgAttribLo <<= 1
	p.bgAttribHi <<= 1
}

// loadBackgroundShifters loads the low byte of each shifter with the most
// recently fetched tile/attribute data.
func (p *PPU) loadBackgroundShifters() {
	p.bgPatternLo = (p.bgPatternLo & 0xFF00) | uint16(p.nextTileLo)
	p.bgPatternHi = (p.bgPatternHi & 0xFF00) | uint16(p.nextTileHi)

	var attrLo, attrHi uint16
	if p.nextAttr&0x01 != 0 {
		attrLo = 0xFF
	}
	if p.nextAttr&0x02 != 0 {
		attrHi = 0xFF
	}
	p.bgAttribLo = (p.bgAttribLo & 0xFF00) | attrLo
	p.bgAttribHi = (p.bgAttribHi & 0xFF00) | attrHi
}

// clearSpriteShifters zeros all eight sprite pattern shifters.
func (p *PPU) clearSpriteShifters() {
	for i := range p.spritePatternShifterLo {
		p.spritePatternShifterLo[i] = 0
		p.spritePatternShifterHi[i] = 0
	}
}

// evaluateSprites populates secondary OAM with up to 8 sprites visible on
// the next scanline, at PPU cycle 65 as required for this scanline.
func (p *PPU) evaluateSprites() {
	spriteHeight := 8
	if p.ppuCtrl&0x20 != 0 {
		spriteHeight = 16
	}

	found := 0
	for spriteIndex := 0; spriteIndex < 64; spriteIndex++ {
		oamIndex := spriteIndex * 4
		sY := int(p.oam[oamIndex])

		if p.scanline >= sY && p.scanline < sY+spriteHeight {
			if found < 8 {
				dst := found * 4
				p.secondaryOAM[dst] = p.oam[oamIndex]
				p.secondaryOAM[dst+1] = p.oam[oamIndex+1]
				p.secondaryOAM[dst+2] = p.oam[oamIndex+2]
				p.secondaryOAM[dst+3] = p.oam[oamIndex+3]
				p.spriteIndexes[found] = uint8(spriteIndex)

				if spriteIndex == 0 {
					p.sprite0Possible = true
				}
				found++
			} else {
				p.ppuStatus |= 0x20 // Sprite overflow
				break
			}
		}
	}

	p.spriteCount = uint8(found)
}

// loadSprites fetches the pattern bytes for the sprites placed into
// secondary OAM and loads them into the sprite shifters, at PPU cycle 257.
func (p *PPU) loadSprites() {
	spriteHeight := 8
	if p.ppuCtrl&0x20 != 0 {
		spriteHeight = 16
	}

	for i := 0; i < int(p.spriteCount); i++ {
		base := i * 4
		sY := int(p.secondaryOAM[base])
		tileIndex := p.secondaryOAM[base+1]
		attributes := p.secondaryOAM[base+2]
		sX := p.secondaryOAM[base+3]

		row := p.scanline - sY
		if row < 0 {
			row = 0
		}
		if attributes&0x80 != 0 { // Vertical flip
			row = spriteHeight - 1 - row
		}

		var patternTableBase uint16
		if spriteHeight == 8 {
			if p.ppuCtrl&0x08 != 0 {
				patternTableBase = 0x1000
			}
		} else {
			if tileIndex&0x01 != 0 {
				patternTableBase = 0x1000
			}
			tileIndex &= 0xFE
			if row >= 8 {
				tileIndex++
				row -= 8
			}
		}

		addr := patternTableBase + uint16(tileIndex)*16 + uint16(row)
		lo := p.memory.Read(addr)
		hi := p.memory.Read(addr + 8)
		if attributes&0x40 != 0 { // Horizontal flip
			lo = flipByte(lo)
			hi = flipByte(hi)
		}

		p.spritePatternShifterLo[i] = lo
		p.spritePatternShifterHi[i] = hi
		p.spriteAttributes[i] = attributes
		p.spriteXCounters[i] = sX
	}
}

func flipByte(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// drawPixel composes the background and sprite pixel at (x, y) and writes
// the resolved color into the frame buffer.
func (p *PPU) drawPixel(x, y int) {
	if p.memory == nil {
		return
	}

	var bgColorIdx, bgPalette uint8
	if p.backgroundEnabled && !(x < 8 && p.ppuMask&0x02 == 0) {
		bitMux := uint16(0x8000 >> p.x)
		var lo, hi uint8
		if p.bgPatternLo&bitMux != 0 {
			lo = 1
		}
		if p.bgPatternHi&bitMux != 0 {
			hi = 1
		}
		bgColorIdx = (hi << 1) | lo

		var palLo, palHi uint8
		if p.bgAttribLo&bitMux != 0 {
			palLo = 1
		}
		if p.bgAttribHi&bitMux != 0 {
			palHi = 1
		}
		bgPalette = (palHi << 1) | palLo
	}

	var spColorIdx, spPalette uint8
	var spPriority bool
	spriteIdx := -1
	if p.spritesEnabled && !(x < 8 && p.ppuMask&0x04 == 0) {
		for i := 0; i < int(p.spriteCount); i++ {
			if p.spriteXCounters[i] != 0 {
				continue
			}
			var lo, hi uint8
			if p.spritePatternShifterLo[i]&0x80 != 0 {
				lo = 1
			}
			if p.spritePatternShifterHi[i]&0x80 != 0 {
				hi = 1
			}
			colorIdx := (hi << 1) | lo
			if colorIdx == 0 {
				continue
			}
			spColorIdx = colorIdx
			spPalette = (p.spriteAttributes[i] & 0x03) + 4
			spPriority = p.spriteAttributes[i]&0x20 == 0 // bit clear = in front of background
			spriteIdx = i
			break
		}
	}

	if p.sprite0Possible && spriteIdx >= 0 && p.spriteIndexes[spriteIdx] == 0 &&
		bgColorIdx != 0 && spColorIdx != 0 && p.backgroundEnabled && p.spritesEnabled &&
		x != 255 && p.ppuStatus&0x40 == 0 {
		p.ppuStatus |= 0x40
	}

	var pixel, palette uint8
	switch {
	case bgColorIdx == 0 && spColorIdx == 0:
		pixel, palette = 0, 0
	case bgColorIdx == 0:
		pixel, palette = spColorIdx, spPalette
	case spColorIdx == 0:
		pixel, palette = bgColorIdx, bgPalette
	case spPriority:
		pixel, palette = spColorIdx, spPalette
	default:
		pixel, palette = bgColorIdx, bgPalette
	}

	paletteAddr := 0x3F00 + uint16(palette)*4 + uint16(pixel)
	if pixel == 0 {
		paletteAddr = 0x3F00
	}
	nesColorIndex := p.memory.Read(paletteAddr)
	p.frameBuffer[y*256+x] = p.NESColorToRGB(nesColorIndex)
}

// updateRenderingFlags updates internal rendering state based on PPUMASK
func (p *PPU) updateRenderingFlags() {
	p.backgroundEnabled = (p.ppuMask & 0x08) != 0
	p.spritesEnabled = (p.ppuMask & 0x10) != 0
	p.renderingEnabled = p.backgroundEnabled || p.spritesEnabled
}

// checkNMI checks if an NMI should be triggered
func (p *PPU) checkNMI() {
	if (p.ppuCtrl&0x80 != 0) && (p.ppuStatus&0x80 != 0) && p.nmiCallback != nil {
		p.nmiCallback()
	}
}

// writePPUScroll handles writes to PPUSCROLL ($2005)
func (p *PPU) writePPUScroll(value uint8) {
	if !p.w {
		p.t = (p.t & 0xFFE0) | (uint16(value) >> 3)
		p.x = value & 0x07
		p.w = true
	} else {
		p.t = (p.t & 0x8FFF) | ((uint16(value) & 0x07) << 12)
		p.t = (p.t & 0xFC1F) | ((uint16(value) & 0xF8) << 2)
		p.w = false
	}
}

// writePPUAddr handles writes to PPUADDR ($2006)
func (p *PPU) writePPUAddr(value uint8) {
	if !p.w {
		p.t = (p.t & 0x80FF) | ((uint16(value) & 0x3F) << 8)
		p.w = true
	} else {
		p.t = (p.t & 0xFF00) | uint16(value)
		p.v = p.t
		p.w = false
	}
}

// readPPUData handles reads from PPUDATA ($2007)
func (p *PPU) readPPUData() uint8 {
	var data uint8

	if p.memory == nil {
		data = 0
	} else if p.v >= 0x3F00 {
		data = p.memory.Read(p.v)
		p.readBuffer = p.memory.Read(p.v & 0x2FFF)
	} else {
		data = p.readBuffer
		p.readBuffer = p.memory.Read(p.v)
	}

	p.incrementV()
	return data
}

// writePPUData handles writes to PPUDATA ($2007)
func (p *PPU) writePPUData(value uint8) {
	if p.memory != nil {
		p.memory.Write(p.v, value)
	}
	p.incrementV()
}

func (p *PPU) incrementV() {
	if p.ppuCtrl&0x04 != 0 {
		p.v += 32
	} else {
		p.v += 1
	}
	p.v &= 0x3FFF
}

// GetFrameBuffer returns the current frame buffer
func (p *PPU) GetFrameBuffer() [256 * 240]uint32 {
	return p.frameBuffer
}

// GetFrameCount returns the current frame count
func (p *PPU) GetFrameCount() uint64 {
	return p.frameCount
}

// SetFrameCount sets the frame count (for synchronization)
func (p *PPU) SetFrameCount(count uint64) {
	p.frameCount = count
}

// GetScanline returns the current scanline
func (p *PPU) GetScanline() int {
	return p.scanline
}

// GetCycle returns the current cycle
func (p *PPU) GetCycle() int {
	return p.cycle
}

// IsRenderingEnabled returns true if rendering is enabled
func (p *PPU) IsRenderingEnabled() bool {
	return p.renderingEnabled
}

// IsVBlank returns true if currently in vertical blank
func (p *PPU) IsVBlank() bool {
	return (p.ppuStatus & 0x80) != 0
}

// GetCycleCount returns the total PPU cycle count
func (p *PPU) GetCycleCount() uint64 {
	return p.cycleCount
}

// Scroll helper methods for VRAM address manipulation

func (p *PPU) getCoarseX() int { return int(p.v & 0x001F) }
func (p *PPU) getCoarseY() int { return int((p.v >> 5) & 0x001F) }
func (p *PPU) getFineY() int   { return int((p.v >> 12) & 0x0007) }

// incrementX increments the coarse X and wraps to next nametable if needed
func (p *PPU) incrementX() {
	if (p.v & 0x001F) == 31 {
		p.v &= ^uint16(0x001F)
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

// incrementY increments fine Y, and if it overflows, increments coarse Y
func (p *PPU) incrementY() {
	if (p.v & 0x7000) != 0x7000 {
		p.v += 0x1000
	} else {
		p.v &= ^uint16(0x7000)
		y := (p.v & 0x03E0) >> 5
		if y == 29 {
			y = 0
			p.v ^= 0x0800
		} else if y == 31 {
			y = 0
		} else {
			y++
		}
		p.v = (p.v & ^uint16(0x03E0)) | (y << 5)
	}
}

// copyX copies all X-related bits from t to v (bits 10, 4-0)
func (p *PPU) copyX() {
	p.v = (p.v & 0xFBE0) | (p.t & 0x041F)
}

// copyY copies all Y-related bits from t to v (bits 11, 14-5)
func (p *PPU) copyY() {
	p.v = (p.v & 0x841F) | (p.t & 0x7BE0)
}

// NES 2C02 Color Palette (NTSC)
var nesColorPalette = [64]uint32{
	// Row 0 (0x00-0x0F)
	0xFF666666, 0xFF002A88, 0xFF1412A7, 0xFF3B00A4, 0xFF5C007E, 0xFF6E0040, 0xFF6C0600, 0xFF561D00,
	0xFF333500, 0xFF0B4800, 0xFF005200, 0xFF004F08, 0xFF00404D, 0xFF000000, 0xFF000000, 0xFF000000,
	// Row 1 (0x10-0x1F)
	0xFFADADAD, 0xFF155FD9, 0xFF4240FF, 0xFF7527FE, 0xFFA01ACC, 0xFFB71E7B, 0xFFB53120, 0xFF994E00,
	0xFF6B6D00, 0xFF388700, 0xFF0C9300, 0xFF008F32, 0xFF007C8D, 0xFF000000, 0xFF000000, 0xFF000000,
	// Row 2 (0x20-0x2F)
	0xFFFFFEFF, 0xFF64B0FF, 0xFF9290FF, 0xFFC676FF, 0xFFF36AFF, 0xFFFE6ECC, 0xFFFE8170, 0xFFEA9E22,
	0xFFBCBE00, 0xFF88D800, 0xFF5CE430, 0xFF45E082, 0xFF48CDDE, 0xFF4F4F4F, 0xFF000000, 0xFF000000,
	// Row 3 (0x30-0x3F)
	0xFFFFFEFF, 0xFFC0DFFF, 0xFFD3D2FF, 0xFFE8C8FF, 0xFFFBC2FF, 0xFFFEC4EA, 0xFFFECCC5, 0xFFF7D8A5,
	0xFFE4E594, 0xFFCFF29B, 0xFFBEFBB3, 0xFFB8F8D8, 0xFFB8F8F8, 0xFF000000, 0xFF000000, 0xFF000000,
}

// NESColorToRGB converts a NES color index to RGB value
func NESColorToRGB(colorIndex uint8) uint32 {
	if colorIndex >= 64 {
		return 0x000000
	}
	return nesColorPalette[colorIndex] & 0x00FFFFFF
}

// NESColorToRGB converts a NES color index to RGB value (PPU method)
func (p *PPU) NESColorToRGB(colorIndex uint8) uint32 {
	return NESColorToRGB(colorIndex)
}
