package guids

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-uefi-guids/guid"
)

var published = []struct {
	name string
	g    guid.GUID
	want string
}{
	{"CACHE_ATTRIBUTE_CHANGE_EVENT_GROUP", CacheAttributeChangeEventGroup, "B8E477C7-26A9-4B9A-A7C9-5F8F1F3D9C7B"},
	{"DXE_CORE", DXECore, "23C9322F-2AF2-476A-BC4C-26BC88266C71"},
	{"EBS_FAILED", EBSFailed, "4F6C5507-232F-4787-B95E-72F862490CB1"},
	{"EDKII_FPDT_EXTENDED_FIRMWARE_PERFORMANCE", EDKIIFPDTExtendedFirmwarePerformance, "3B387BFD-7ABC-4CF2-A0CA-B6A16C1B1B25"},
	{"EVENT_GROUP_END_OF_DXE", EventGroupEndOfDXE, "02CE967A-DD7E-4FFC-9EE7-810CF0470880"},
	{"HARDWARE_INTERRUPT_PROTOCOL", HardwareInterruptProtocol, "2890B3EA-053D-1643-AD0C-D64808DA3FF1"},
	{"HARDWARE_INTERRUPT_PROTOCOL_V2", HardwareInterruptProtocolV2, "32898322-2DA1-474A-BAAA-F3F7CF569470"},
	{"MEMORY_TYPE_INFORMATION", MemoryTypeInformation, "4C19049F-4137-4DD3-9C10-8B97A83FFDFA"},
	{"PERFORMANCE_PROTOCOL", PerformanceProtocol, "76B6BDFA-2ACD-4462-9E3F-CB58C969D937"},
	{"SMM_COMMUNICATION_PROTOCOL", SMMCommunicationProtocol, "C68ED8E2-9DC6-4CBD-9D94-DB65ACC5C332"},
	{"ZERO", Zero, "00000000-0000-0000-0000-000000000000"},
	{"HOB_MEMORY_ALLOC_STACK", HOBMemoryAllocStack, "4ED4BF27-4092-42E9-807D-527B1D00C9BD"},
}

func TestPublishedValues(t *testing.T) {
	for _, tc := range published {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.g.String(); got != tc.want {
				t.Errorf("%s = %s, want %s", tc.name, got, tc.want)
			}
			parsed, err := guid.Parse(tc.want)
			if err != nil {
				t.Fatalf("guid.Parse(%q) failed: %v", tc.want, err)
			}
			if parsed != tc.g {
				t.Errorf("guid.Parse(%q) = %+v, want %+v", tc.want, parsed, tc.g)
			}
		})
	}
}

func TestZeroMatchesZeroFields(t *testing.T) {
	if Zero != guid.FromFields(0, 0, 0, 0, 0, [6]byte{}) {
		t.Errorf("Zero = %v, want all-zero GUID", Zero)
	}
	if Zero != guid.Zero {
		t.Errorf("Zero = %v, guid.Zero = %v", Zero, guid.Zero)
	}
}

func TestPairwiseDistinct(t *testing.T) {
	for i, a := range published {
		for _, b := range published[i+1:] {
			if a.g == b.g {
				t.Errorf("%s and %s share value %v", a.name, b.name, a.g)
			}
		}
	}
}

func TestRegistryCoversPublished(t *testing.T) {
	all := All()
	if len(all) != len(published) {
		t.Fatalf("All() returned %d entries, want %d", len(all), len(published))
	}
	for i, tc := range published {
		if all[i].Name != tc.name || all[i].GUID != tc.g {
			t.Errorf("All()[%d] = %s %v, want %s %v", i, all[i].Name, all[i].GUID, tc.name, tc.g)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].GUID = Zero
	all[0].Name = "CHANGED"
	if diff := cmp.Diff(All()[0].GUID, CacheAttributeChangeEventGroup); diff != "" {
		t.Errorf("modifying All() result changed the registry (-got +want):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"DXE_CORE", "dxe_core", "DXECore", "dxecore", " DXE_CORE "} {
		e, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if e.GUID != DXECore || e.Kind != Module {
			t.Errorf("Lookup(%q) = %+v, want DXE_CORE module entry", name, e)
		}
	}
	if _, err := Lookup("DXE_CORE_2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestByGUID(t *testing.T) {
	e, ok := ByGUID(SMMCommunicationProtocol)
	if !ok || e.Name != "SMM_COMMUNICATION_PROTOCOL" {
		t.Errorf("ByGUID(SMMCommunicationProtocol) = %+v, %v", e, ok)
	}
	if _, ok := ByGUID(guid.MustParse("11111111-2222-3333-4444-555555555555")); ok {
		t.Error("ByGUID(unregistered) returned ok")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "EBS_FAILED", want: "EBS_FAILED"},
		{in: "4f6c5507-232f-4787-b95e-72f862490cb1", want: "EBS_FAILED"},
		{in: "{4ED4BF27-4092-42E9-807D-527B1D00C9BD}", want: "HOB_MEMORY_ALLOC_STACK"},
		{in: "11111111-2222-3333-4444-555555555555", wantErr: true},
		{in: "nonsense", wantErr: true},
	}
	for _, tc := range tests {
		e, err := Resolve(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Resolve(%q) error = %v, want ErrNotFound", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tc.in, err)
			continue
		}
		if e.Name != tc.want {
			t.Errorf("Resolve(%q) = %s, want %s", tc.in, e.Name, tc.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := Name(EventGroupEndOfDXE); got != "EVENT_GROUP_END_OF_DXE" {
		t.Errorf("Name(EventGroupEndOfDXE) = %q", got)
	}
	unknown := guid.MustParse("11111111-2222-3333-4444-555555555555")
	if got := Name(unknown); got != unknown.String() {
		t.Errorf("Name(unknown) = %q, want %q", got, unknown.String())
	}
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{Sentinel, EventGroup, Protocol, Module, HOB} {
		got, err := ParseKind(strings.ToUpper(k.String()))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("driver"); err == nil {
		t.Error("ParseKind(driver) succeeded")
	}
}

func TestLookupNamesDifferingOnlyInCase(t *testing.T) {
	for _, name := range []string{"ZERO", "Zero", "zero"} {
		e, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if e.Name != "ZERO" || !e.GUID.IsZero() {
			t.Errorf("Lookup(%q) = %+v, want the ZERO entry", name, e)
		}
	}
}

func TestReassignDoesNotAlterRegistry(t *testing.T) {
	saved := DXECore
	defer func() { DXECore = saved }()
	DXECore = guid.Zero

	e, err := Lookup("DXE_CORE")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := e.GUID.String(), "23C9322F-2AF2-476A-BC4C-26BC88266C71"; got != want {
		t.Errorf("Lookup(DXE_CORE) after reassigning DXECore = %s, want %s", got, want)
	}
	if e, ok := ByGUID(guid.Zero); !ok || e.Name != "ZERO" {
		t.Errorf("ByGUID(Zero) after reassigning DXECore = %+v, %v", e, ok)
	}
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				for _, tc := range published {
					e, err := Lookup(tc.name)
					if err != nil || e.GUID.String() != tc.want {
						t.Errorf("Lookup(%s) = %v, %v", tc.name, e.GUID, err)
						return
					}
					if byValue, ok := ByGUID(e.GUID); !ok || byValue.Name != tc.name {
						t.Errorf("ByGUID(%v) = %+v, %v", e.GUID, byValue, ok)
						return
					}
				}
				if n := len(All()); n != len(published) {
					t.Errorf("All() returned %d entries, want %d", n, len(published))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestKindOrder(t *testing.T) {
	want := []string{"event-group", "protocol", "module", "hob", "sentinel"}
	for i, name := range want {
		if got := Kind(i).String(); got != name {
			t.Errorf("Kind(%d) = %q, want %q", i, got, name)
		}
	}
}
