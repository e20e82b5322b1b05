package memstore

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/knobs/pkg/params"
	"github.com/mesh-intelligence/knobs/pkg/types"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	reg, err := params.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	store, err := New(reg, types.Config{Backend: types.BackendMemory})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return store
}

func TestNewRejectsBadConfig(t *testing.T) {
	reg, err := params.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if _, err := New(reg, types.Config{}); !errors.Is(err, types.ErrBackendEmpty) {
		t.Errorf("New with empty backend: error = %v, want %v", err, types.ErrBackendEmpty)
	}
	if _, err := New(reg, types.Config{Backend: "flash"}); !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("New with unknown backend: error = %v, want %v", err, types.ErrBackendUnknown)
	}
}

func TestReadBeforeWriteFails(t *testing.T) {
	store := newStore(t)

	if store.Present(params.ParamTemperatureSetpoint) {
		t.Error("Present on fresh store = true, want false")
	}
	if _, err := store.FormatText(params.ParamTemperatureSetpoint); !errors.Is(err, types.ErrNotPresent) {
		t.Errorf("FormatText on empty slot: error = %v, want %v", err, types.ErrNotPresent)
	}

	h, err := types.BindHandle[params.TemperatureSetpoint](store.Registry(), params.ParamTemperatureSetpoint)
	if err != nil {
		t.Fatalf("BindHandle error = %v", err)
	}
	if _, err := h.Get(store); !errors.Is(err, types.ErrNotPresent) {
		t.Errorf("Get on empty slot: error = %v, want %v", err, types.ErrNotPresent)
	}

	dst := make([]byte, 16)
	if _, err := store.GetRaw(params.ParamTemperatureSetpoint, dst); !errors.Is(err, types.ErrNotPresent) {
		t.Errorf("GetRaw on empty slot: error = %v, want %v", err, types.ErrNotPresent)
	}
}

func TestTypedRoundTrip(t *testing.T) {
	store := newStore(t)

	h, err := types.BindHandle[params.TemperatureSetpoint](store.Registry(), params.ParamTemperatureSetpoint)
	if err != nil {
		t.Fatalf("BindHandle error = %v", err)
	}

	want := params.TemperatureSetpoint{Celsius: 42.25}
	if err := h.Set(store, want); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	got, err := h.Get(store)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestTypedSetRejectsOutOfDomain(t *testing.T) {
	store := newStore(t)

	h, err := types.BindHandle[params.TemperatureSetpoint](store.Registry(), params.ParamTemperatureSetpoint)
	if err != nil {
		t.Fatalf("BindHandle error = %v", err)
	}

	err = h.Set(store, params.TemperatureSetpoint{Celsius: -1234.0})
	if !errors.Is(err, types.ErrOutOfRange) {
		t.Errorf("Set out-of-domain: error = %v, want %v", err, types.ErrOutOfRange)
	}
	if store.Present(h.ID()) {
		t.Error("slot became present after rejected set")
	}
}

// Scenario: set "37.5" by text, read back "37.50", then prove a rejected
// typed set leaves the committed value intact.
func TestTextScenarioTemperature(t *testing.T) {
	store := newStore(t)
	id := params.ParamTemperatureSetpoint

	if err := store.SetText(id, "37.5"); err != nil {
		t.Fatalf("SetText(37.5) error = %v", err)
	}
	text, err := store.FormatText(id)
	if err != nil {
		t.Fatalf("FormatText error = %v", err)
	}
	if text != "37.50" {
		t.Errorf("FormatText = %q, want %q", text, "37.50")
	}

	h, err := types.BindHandle[params.TemperatureSetpoint](store.Registry(), id)
	if err != nil {
		t.Fatalf("BindHandle error = %v", err)
	}
	if err := h.Set(store, params.TemperatureSetpoint{Celsius: -1234.0}); !errors.Is(err, types.ErrOutOfRange) {
		t.Fatalf("Set(-1234) error = %v, want %v", err, types.ErrOutOfRange)
	}

	text, err = store.FormatText(id)
	if err != nil {
		t.Fatalf("FormatText after rejection error = %v", err)
	}
	if text != "37.50" {
		t.Errorf("FormatText after rejection = %q, want %q", text, "37.50")
	}
}

// Scenario: integral voltage round-trips without decoration.
func TestTextScenarioVoltage(t *testing.T) {
	store := newStore(t)
	id := params.ParamSupplyVoltage

	if err := store.SetText(id, "1015"); err != nil {
		t.Fatalf("SetText(1015) error = %v", err)
	}
	text, err := store.FormatText(id)
	if err != nil {
		t.Fatalf("FormatText error = %v", err)
	}
	if text != "1015" {
		t.Errorf("FormatText = %q, want %q", text, "1015")
	}
}

func TestSetTextFailuresLeaveSlotUntouched(t *testing.T) {
	store := newStore(t)
	id := params.ParamSupplyVoltage

	if err := store.SetText(id, "5000"); err != nil {
		t.Fatalf("SetText(5000) error = %v", err)
	}

	// Parse failure.
	if err := store.SetText(id, "not-a-number"); !errors.Is(err, types.ErrParse) {
		t.Errorf("SetText(not-a-number) error = %v, want %v", err, types.ErrParse)
	}
	// Parses but out of domain (exclusive upper bound).
	if err := store.SetText(id, "20000"); !errors.Is(err, types.ErrOutOfRange) {
		t.Errorf("SetText(20000) error = %v, want %v", err, types.ErrOutOfRange)
	}

	text, err := store.FormatText(id)
	if err != nil {
		t.Fatalf("FormatText error = %v", err)
	}
	if text != "5000" {
		t.Errorf("FormatText = %q, want %q", text, "5000")
	}
}

func TestSetTextFailureOnEmptySlotStaysEmpty(t *testing.T) {
	store := newStore(t)
	id := params.ParamFanDutyCycle

	if err := store.SetText(id, "250"); err == nil {
		t.Fatal("SetText(250) succeeded, want failure")
	}
	if store.Present(id) {
		t.Error("slot became present after failed set")
	}
}

func TestTextRoundTripAllDefaults(t *testing.T) {
	store := newStore(t)
	if err := store.RestoreAll(); err != nil {
		t.Fatalf("RestoreAll error = %v", err)
	}

	// Re-feeding each parameter its own rendered text must reproduce the
	// same rendering.
	for _, id := range store.Registry().IDs() {
		text, err := store.FormatText(id)
		if err != nil {
			t.Fatalf("FormatText(%d) error = %v", id, err)
		}
		if err := store.SetText(id, text); err != nil {
			t.Fatalf("SetText(%d, %q) error = %v", id, text, err)
		}
		again, err := store.FormatText(id)
		if err != nil {
			t.Fatalf("FormatText(%d) error = %v", id, err)
		}
		if again != text {
			t.Errorf("id %d: text round trip %q -> %q", id, text, again)
		}
	}
}

func TestSetRawRejectsWrongLength(t *testing.T) {
	store := newStore(t)
	id := params.ParamTemperatureSetpoint

	for _, n := range []int{0, 3, 5, 16} {
		if err := store.SetRaw(id, make([]byte, n)); !errors.Is(err, types.ErrSizeMismatch) {
			t.Errorf("SetRaw with %d bytes: error = %v, want %v", n, err, types.ErrSizeMismatch)
		}
	}
	if store.Present(id) {
		t.Error("slot became present after rejected raw set")
	}
}

func TestRawRoundTrip(t *testing.T) {
	store := newStore(t)
	id := params.ParamHeartbeatInterval
	h := store.Registry().Handler(id)

	if err := store.SetRaw(id, h.Default()); err != nil {
		t.Fatalf("SetRaw(default) error = %v", err)
	}

	dst := make([]byte, h.Size())
	n, err := store.GetRaw(id, dst)
	if err != nil {
		t.Fatalf("GetRaw error = %v", err)
	}
	if n != h.Size() {
		t.Errorf("GetRaw n = %d, want %d", n, h.Size())
	}

	// A too-small destination reports the required length.
	n, err = store.GetRaw(id, make([]byte, 1))
	if !errors.Is(err, types.ErrShortBuffer) {
		t.Errorf("GetRaw short dst: error = %v, want %v", err, types.ErrShortBuffer)
	}
	if n != h.Size() {
		t.Errorf("GetRaw short dst: n = %d, want required %d", n, h.Size())
	}
}

func TestGetTextShortBuffer(t *testing.T) {
	store := newStore(t)
	id := params.ParamTemperatureSetpoint

	if err := store.SetText(id, "37.5"); err != nil {
		t.Fatalf("SetText error = %v", err)
	}

	dst := make([]byte, 2)
	n, err := store.GetText(id, dst)
	if !errors.Is(err, types.ErrShortBuffer) {
		t.Fatalf("GetText short dst: error = %v, want %v", err, types.ErrShortBuffer)
	}
	if n != len("37.50") {
		t.Errorf("GetText short dst: n = %d, want %d", n, len("37.50"))
	}
	if dst[0] != 0 || dst[1] != 0 {
		t.Error("GetText wrote into dst despite short-buffer failure")
	}

	dst = make([]byte, 16)
	n, err = store.GetText(id, dst)
	if err != nil {
		t.Fatalf("GetText error = %v", err)
	}
	if string(dst[:n]) != "37.50" {
		t.Errorf("GetText = %q, want %q", dst[:n], "37.50")
	}
}

func TestRestoreCommitsDefaults(t *testing.T) {
	store := newStore(t)
	id := params.ParamFanDutyCycle

	if err := store.Restore(id); err != nil {
		t.Fatalf("Restore error = %v", err)
	}
	text, err := store.FormatText(id)
	if err != nil {
		t.Fatalf("FormatText error = %v", err)
	}
	if text != "40" {
		t.Errorf("restored value = %q, want %q", text, "40")
	}

	if err := store.RestoreAll(); err != nil {
		t.Fatalf("RestoreAll error = %v", err)
	}
	for _, pid := range store.Registry().IDs() {
		if !store.Present(pid) {
			t.Errorf("id %d not present after RestoreAll", pid)
		}
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := newStore(t)
	b := newStore(t)

	if err := a.SetText(params.ParamSupplyVoltage, "1015"); err != nil {
		t.Fatalf("SetText error = %v", err)
	}
	if b.Present(params.ParamSupplyVoltage) {
		t.Error("write to one store leaked into another")
	}
}
