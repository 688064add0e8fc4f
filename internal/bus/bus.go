// Package bus implements the system bus for communication between NES components.
package bus

import (
	"nescore/internal/apu"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/input"
	"nescore/internal/memory"
	"nescore/internal/ppu"
)

// irqLine is the subset of the cartridge/mapper contract the bus needs to
// poll the mapper's level-triggered IRQ line (MMC3's scanline counter, etc).
type irqLine interface {
	IRQAsserted() bool
	IRQClear()
}

// Bus connects all NES components together
type Bus struct {
	// Core components
	CPU    *cpu.CPU
	PPU    *ppu.PPU
	APU    *apu.APU
	Memory *memory.Memory
	Input  *input.InputState

	mapperIRQ irqLine

	// System state
	totalCycles uint64
	cpuCycles   uint64
	ppuCycles   uint64
	frameCount  uint64

	// Timing coordination
	dmaSuspendCycles uint64
	dmaInProgress    bool
	dmaAlignCycles   int
	dmaSourcePage    uint8
	dmaByteIndex     int
	nmiPending       bool

	// Frame timing (NTSC: 262 scanlines, 341 PPU cycles/scanline)
	cyclesPerFrame uint64 // 89342 PPU cycles = 29780.67 CPU cycles
	oddFrame       bool
}

// New creates a new system bus with all components
func New() *Bus {
	bus := &Bus{
		PPU:   ppu.New(),
		APU:   apu.New(),
		Input: input.NewInputState(),

		// NTSC timing: 89342 PPU cycles per frame
		cyclesPerFrame: 89342,
	}

	// Memory needs references to PPU and APU
	bus.Memory = memory.New(bus.PPU, bus.APU, nil) // Cartridge will be set later

	// Set up input system in memory
	bus.Memory.SetInputSystem(bus.Input)

	// CPU needs memory interface
	bus.CPU = cpu.New(bus.Memory)

	// DMC sample fetches read through the same CPU-visible address space
	bus.APU.SetMemory(bus.Memory)

	// Set up callbacks
	bus.PPU.SetNMICallback(bus.triggerNMI)
	bus.PPU.SetFrameCompleteCallback(bus.handleFrameComplete)
	bus.Memory.SetDMACallback(bus.TriggerOAMDMA)

	// Reset all components to proper initial state
	bus.Reset()

	return bus
}

// Reset resets all components to their initial state
func (b *Bus) Reset() {
	b.CPU.Reset()
	b.PPU.Reset()
	b.APU.Reset()
	b.Input.Reset()

	// Reset timing state
	b.totalCycles = 0
	b.cpuCycles = 0
	b.ppuCycles = 0
	b.frameCount = 0
	b.dmaSuspendCycles = 0
	b.dmaInProgress = false
	b.dmaAlignCycles = 0
	b.dmaByteIndex = 0
	b.nmiPending = false
	b.oddFrame = false

	// Synchronize PPU frame count with bus
	b.PPU.SetFrameCount(0)
}

// triggerNMI is called by the PPU when an NMI should be triggered
func (b *Bus) triggerNMI() {
	b.nmiPending = true
}

// handleFrameComplete is called by the PPU when a frame is naturally completed
func (b *Bus) handleFrameComplete() {
	// Synchronize bus frame counter with PPU's frame counter. The PPU
	// owns cycle-accurate frame timing including odd/even skip; the bus
	// just mirrors the count.
	b.frameCount = b.PPU.GetFrameCount()
}

// Step executes one CPU instruction (or one DMA/IRQ-stalled cycle) and
// advances the PPU/APU accordingly.
func (b *Bus) Step() {
	var cpuCycles uint64

	// Check if CPU is suspended for OAM DMA
	if b.dmaSuspendCycles > 0 {
		cpuCycles = 1
		b.serviceOAMDMACycle()
	} else {
		// Poll interrupt sources in priority order: PPU NMI (edge,
		// latched separately via triggerNMI), APU IRQ, mapper IRQ
		// (both level-triggered).
		if b.nmiPending {
			b.CPU.TriggerNMI()
			b.nmiPending = false
		}
		b.CPU.SetIRQ(b.APU.GetFrameIRQ() || b.APU.GetDMCIRQ() || (b.mapperIRQ != nil && b.mapperIRQ.IRQAsserted()))

		// Let the APU drain any DMC sample-fetch stall before the next
		// instruction executes, same as a real CPU halt cycle.
		for b.APU.PendingStallCycles() > 0 {
			b.APU.ConsumeStallCycle()
			b.ppuCycles += 3
			for i := 0; i < 3; i++ {
				b.PPU.Step()
			}
			b.totalCycles++
		}

		// Execute one CPU instruction
		cpuCycles = b.CPU.Step()
	}

	// PPU runs at exactly 3x CPU speed (cycle-accurate)
	ppuCyclesToRun := cpuCycles * 3
	for i := uint64(0); i < ppuCyclesToRun; i++ {
		b.PPU.Step()
		b.ppuCycles++
	}

	// APU runs at CPU speed
	for i := uint64(0); i < cpuCycles; i++ {
		b.APU.Step()
	}

	// Update counters
	b.cpuCycles += cpuCycles
	b.totalCycles += cpuCycles
}

// serviceOAMDMACycle consumes one CPU-stall cycle of an in-progress OAM
// DMA transfer, copying exactly one OAM byte every other transfer cycle so
// the 256-byte copy is spread across the full 513/514-cycle stall instead
// of happening all at once.
func (b *Bus) serviceOAMDMACycle() {
	b.dmaSuspendCycles--

	if b.dmaAlignCycles > 0 {
		b.dmaAlignCycles--
	} else {
		cyclesIntoTransfer := 512 - int(b.dmaSuspendCycles)
		if cyclesIntoTransfer%2 == 0 && b.dmaByteIndex < 256 {
			addr := uint16(b.dmaSourcePage)<<8 | uint16(b.dmaByteIndex)
			data := b.Memory.Read(addr)
			b.PPU.WriteOAM(uint8(b.dmaByteIndex), data)
			b.dmaByteIndex++
		}
	}

	if b.dmaSuspendCycles == 0 {
		b.dmaInProgress = false
	}
}

// TriggerOAMDMA initiates an OAM DMA transfer. The actual 256-byte copy is
// spread one byte per serviced cycle across the resulting CPU stall by
// serviceOAMDMACycle, called from Step.
func (b *Bus) TriggerOAMDMA(sourcePage uint8) {
	if b.dmaInProgress {
		return // DMA already in progress
	}

	// 513 cycles if starting on an even CPU cycle, 514 if odd: one or
	// two dummy alignment cycles followed by 512 transfer cycles (a
	// read then a write per byte, 256 bytes).
	align := 1
	if b.cpuCycles%2 == 1 {
		align = 2
	}

	b.dmaInProgress = true
	b.dmaSuspendCycles = uint64(align) + 512
	b.dmaAlignCycles = align
	b.dmaSourcePage = sourcePage
	b.dmaByteIndex = 0
}

// LoadCartridge loads a cartridge into the system
func (b *Bus) LoadCartridge(cart memory.CartridgeInterface) {
	// Update memory with cartridge
	b.Memory = memory.New(b.PPU, b.APU, cart)

	// Re-establish input system connection
	b.Memory.SetInputSystem(b.Input)

	b.CPU = cpu.New(b.Memory)
	b.APU.SetMemory(b.Memory)

	// Create PPU memory with proper mirroring mode
	var mirrorMode memory.MirrorMode
	if cart, ok := cart.(*cartridge.Cartridge); ok {
		switch cart.GetMirrorMode() {
		case cartridge.MirrorHorizontal:
			mirrorMode = memory.MirrorHorizontal
		case cartridge.MirrorVertical:
			mirrorMode = memory.MirrorVertical
		case cartridge.MirrorSingleScreen0:
			mirrorMode = memory.MirrorSingleScreen0
		case cartridge.MirrorSingleScreen1:
			mirrorMode = memory.MirrorSingleScreen1
		case cartridge.MirrorFourScreen:
			mirrorMode = memory.MirrorFourScreen
		default:
			mirrorMode = memory.MirrorHorizontal
		}
	} else {
		mirrorMode = memory.MirrorHorizontal
	}

	// Create and set PPU memory
	ppuMemory := memory.NewPPUMemory(cart, mirrorMode)
	b.PPU.SetMemory(ppuMemory)

	// The mapper's IRQ line (MMC3 scanline counter, etc) is polled
	// alongside the APU's frame/DMC IRQs at each instruction boundary.
	if irq, ok := cart.(irqLine); ok {
		b.mapperIRQ = irq
	} else {
		b.mapperIRQ = nil
	}

	// Re-establish callbacks after recreating memory and CPU
	b.PPU.SetNMICallback(b.triggerNMI)
	b.Memory.SetDMACallback(b.TriggerOAMDMA)

	// Reset the CPU to properly initialize PC from reset vector
	b.CPU.Reset()
}

// Run runs the emulator for a specified number of frames
func (b *Bus) Run(frames int) {
	targetFrames := b.frameCount + uint64(frames)

	for b.frameCount < targetFrames {
		b.Step()
	}
}

// RunCycles runs the emulator for a specified number of CPU cycles
func (b *Bus) RunCycles(cycles uint64) {
	targetCycles := b.cpuCycles + cycles

	for b.cpuCycles < targetCycles {
		b.Step()
	}
}

// GetFrameRate returns the current frame rate based on NTSC timing
func (b *Bus) GetFrameRate() float64 {
	// NTSC: CPU frequency ~1.789773 MHz, 29780.67 CPU cycles per frame
	cpuFrequency := 1789773.0
	cpuCyclesPerFrame := cpuFrequency / 60.098803 // NTSC frame rate
	return cpuFrequency / cpuCyclesPerFrame
}

// GetFrameBuffer returns the current PPU frame buffer
func (b *Bus) GetFrameBuffer() []uint32 {
	frameBuffer := b.PPU.GetFrameBuffer()
	return frameBuffer[:]
}

// GetAudioSamples returns the current audio samples from the APU
func (b *Bus) GetAudioSamples() []float32 {
	return b.APU.GetSamples()
}

// SetAudioSampleRate sets the target audio sample rate for the APU
func (b *Bus) SetAudioSampleRate(rate int) {
	b.APU.SetSampleRate(rate)
}

// GetCycleCount returns the current CPU cycle count
func (b *Bus) GetCycleCount() uint64 {
	return b.cpuCycles
}

// GetFrameCount returns the current frame count
func (b *Bus) GetFrameCount() uint64 {
	return b.frameCount
}

// IsDMAInProgress returns whether DMA is currently in progress
func (b *Bus) IsDMAInProgress() bool {
	return b.dmaInProgress
}

// isRenderingEnabled checks if PPU rendering is enabled
func (b *Bus) isRenderingEnabled() bool {
	mask := b.PPU.ReadRegister(0x2001)
	return (mask & 0x18) != 0 // Check bits 3 and 4 (show background/sprites)
}

// SetControllerButton sets the state of a controller button
func (b *Bus) SetControllerButton(controller int, button input.Button, pressed bool) {
	switch controller {
	case 0, 1: // Support both 0-based and 1-based indexing
		b.Input.Controller1.SetButton(button, pressed)
	case 2:
		b.Input.Controller2.SetButton(button, pressed)
	}
}

// SetControllerButtons sets all button states for a controller
func (b *Bus) SetControllerButtons(controller int, buttons [8]bool) {
	switch controller {
	case 0, 1:
		b.Input.SetButtons1(buttons)
	case 2:
		b.Input.SetButtons2(buttons)
	}
}

// GetInputState returns the input state for direct access
func (b *Bus) GetInputState() *input.InputState {
	return b.Input
}

// Frame executes one complete frame worth of cycles
func (b *Bus) Frame() {
	// NTSC: 29,781 CPU cycles per frame (89,342 PPU cycles / 3)
	targetCycles := b.cpuCycles + 29781

	for b.cpuCycles < targetCycles {
		b.Step()
	}
}

// GetCPUState returns the current CPU state for testing
func (b *Bus) GetCPUState() CPUState {
	return CPUState{
		PC:     b.CPU.PC,
		A:      b.CPU.A,
		X:      b.CPU.X,
		Y:      b.CPU.Y,
		SP:     b.CPU.SP,
		Cycles: b.cpuCycles,
		Flags: CPUFlags{
			N: b.CPU.N,
			V: b.CPU.V,
			B: b.CPU.B,
			D: b.CPU.D,
			I: b.CPU.I,
			Z: b.CPU.Z,
			C: b.CPU.C,
		},
	}
}

// CPUState represents CPU state snapshot for testing
type CPUState struct {
	PC      uint16
	A, X, Y uint8
	SP      uint8
	Cycles  uint64
	Flags   CPUFlags
}

// CPUFlags represents CPU status flags for testing
type CPUFlags struct {
	N, V, B, D, I, Z, C bool
}

// GetPPUState returns the current PPU state for testing
func (b *Bus) GetPPUState() PPUState {
	return PPUState{
		Scanline:    b.PPU.GetScanline(),
		Cycle:       b.PPU.GetCycle(),
		FrameCount:  b.frameCount,
		VBlankFlag:  b.PPU.IsVBlank(),
		RenderingOn: b.isRenderingEnabled(),
	}
}

// PPUState represents PPU state snapshot for testing
type PPUState struct {
	Scanline    int
	Cycle       int
	FrameCount  uint64
	VBlankFlag  bool
	RenderingOn bool
}
