package bus

import (
	"testing"

	"nescore/internal/cartridge"
)

func buildTestCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	cart, err := cartridge.NewTestROMBuilder().
		WithPRGSize(1).
		WithCHRSize(1).
		WithResetVector(0x8000).
		WithData(0x0000, []uint8{
			0xA9, 0x42, // LDA #$42
			0x85, 0x10, // STA $10
			0x4C, 0x04, 0x80, // JMP $8004 (infinite loop)
		}).
		WithDescription("bus test ROM").
		BuildCartridge()
	if err != nil {
		t.Fatalf("failed to build test cartridge: %v", err)
	}
	return cart
}

func TestLoadCartridgeWiresCPUAndPPU(t *testing.T) {
	b := New()
	b.LoadCartridge(buildTestCartridge(t))

	if b.CPU.PC != 0x8000 {
		t.Fatalf("expected PC to start at reset vector 0x8000, got %#x", b.CPU.PC)
	}
	if b.Memory.Read(0x8000) != 0xA9 {
		t.Fatalf("expected ROM byte 0xA9 at 0x8000, got %#x", b.Memory.Read(0x8000))
	}
}

func TestOAMDMASpreadsCopyAcrossStalledCycles(t *testing.T) {
	b := New()
	b.LoadCartridge(buildTestCartridge(t))

	for i := 0; i < 256; i++ {
		b.Memory.Write(uint16(i), uint8(i))
	}

	b.TriggerOAMDMA(0x00)
	if !b.IsDMAInProgress() {
		t.Fatalf("expected DMA to be marked in progress immediately after trigger")
	}

	initialByteIndex := b.dmaByteIndex
	b.Step()
	if b.dmaByteIndex != initialByteIndex {
		t.Fatalf("expected the first serviced DMA cycle to be an alignment cycle with no byte copied yet")
	}

	stepsTaken := 1
	for b.IsDMAInProgress() && stepsTaken < 600 {
		b.Step()
		stepsTaken++
	}

	if b.IsDMAInProgress() {
		t.Fatalf("DMA did not complete within the expected cycle budget")
	}
	if stepsTaken < 513 {
		t.Fatalf("expected at least 513 serviced cycles for the DMA stall, got %d", stepsTaken)
	}

	for i := 0; i < 256; i++ {
		b.PPU.WriteRegister(0x2003, uint8(i))
		got := b.PPU.ReadRegister(0x2004)
		if got != uint8(i) {
			t.Fatalf("expected OAM byte %d to equal %d after DMA, got %d", i, i, got)
		}
	}
}

func TestTriggerOAMDMAIgnoredWhileInProgress(t *testing.T) {
	b := New()
	b.LoadCartridge(buildTestCartridge(t))

	b.TriggerOAMDMA(0x00)
	firstSuspend := b.dmaSuspendCycles
	b.TriggerOAMDMA(0x01)
	if b.dmaSuspendCycles != firstSuspend {
		t.Fatalf("expected a second TriggerOAMDMA call to be ignored while one is in progress")
	}
}

func TestStepAdvancesCountersConsistently(t *testing.T) {
	b := New()
	b.LoadCartridge(buildTestCartridge(t))

	b.Step()
	if b.cpuCycles == 0 {
		t.Fatalf("expected cpuCycles to advance after a Step")
	}
	if b.ppuCycles != b.cpuCycles*3 {
		t.Fatalf("expected PPU to run at 3x CPU rate, got ppuCycles=%d cpuCycles=%d", b.ppuCycles, b.cpuCycles)
	}
}

func TestNMIPendingDeliveredOnNextStep(t *testing.T) {
	b := New()
	b.LoadCartridge(buildTestCartridge(t))

	b.triggerNMI()
	if !b.nmiPending {
		t.Fatalf("expected nmiPending to be set")
	}

	b.Step()
	if b.nmiPending {
		t.Fatalf("expected nmiPending to be cleared once delivered to the CPU")
	}
}
