package guids

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-uefi-guids/guid"
)

// ErrNotFound is returned when a name or GUID is not in the registry.
var ErrNotFound = errors.New("GUID not found in registry")

// Kind describes what a registered GUID tags.
type Kind uint8

// Kinds of registered GUIDs.
const (
	EventGroup Kind = iota
	Protocol
	Module
	HOB
	Sentinel
)

var kindNames = map[Kind]string{
	EventGroup: "event-group",
	Protocol:   "protocol",
	Module:     "module",
	HOB:        "hob",
	Sentinel:   "sentinel",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown GUID kind %q", s)
}

// Entry is one registered GUID.
type Entry struct {
	// Name is the firmware-style constant name, e.g. DXE_CORE.
	Name string `json:"name" yaml:"name"`
	// GoName is the exported variable in this package, e.g. DXECore.
	GoName      string    `json:"go_name" yaml:"go_name"`
	GUID        guid.GUID `json:"guid" yaml:"guid"`
	Kind        Kind      `json:"kind" yaml:"kind"`
	Description string    `json:"description" yaml:"description"`
}

// Entries are copied out of the package vars at init, so reassigning an
// exported var later does not change the registry.
var registry = []Entry{
	{"CACHE_ATTRIBUTE_CHANGE_EVENT_GROUP", "CacheAttributeChangeEventGroup", CacheAttributeChangeEventGroup, EventGroup,
		"Signaled when the cache attributes of a memory region change"},
	{"DXE_CORE", "DXECore", DXECore, Module,
		"FFS file GUID of the DXE Core module"},
	{"EBS_FAILED", "EBSFailed", EBSFailed, EventGroup,
		"Signaled when ExitBootServices() fails"},
	{"EDKII_FPDT_EXTENDED_FIRMWARE_PERFORMANCE", "EDKIIFPDTExtendedFirmwarePerformance", EDKIIFPDTExtendedFirmwarePerformance, HOB,
		"Performance report HOB, FBPT address status code and configuration table"},
	{"EVENT_GROUP_END_OF_DXE", "EventGroupEndOfDXE", EventGroupEndOfDXE, EventGroup,
		"End of DXE event group"},
	{"HARDWARE_INTERRUPT_PROTOCOL", "HardwareInterruptProtocol", HardwareInterruptProtocol, Protocol,
		"AARCH64 interrupt handler registration"},
	{"HARDWARE_INTERRUPT_PROTOCOL_V2", "HardwareInterruptProtocolV2", HardwareInterruptProtocolV2, Protocol,
		"AARCH64 interrupt handler registration with interrupt type query"},
	{"MEMORY_TYPE_INFORMATION", "MemoryTypeInformation", MemoryTypeInformation, HOB,
		"Memory type information HOB, variable and resource descriptor owner"},
	{"PERFORMANCE_PROTOCOL", "PerformanceProtocol", PerformanceProtocol, Protocol,
		"Adds records to the Firmware Basic Boot Performance Table"},
	{"SMM_COMMUNICATION_PROTOCOL", "SMMCommunicationProtocol", SMMCommunicationProtocol, Protocol,
		"Communication between drivers outside SMM and SMI handlers"},
	{"ZERO", "Zero", Zero, Sentinel,
		"All-zero marker or placeholder"},
	{"HOB_MEMORY_ALLOC_STACK", "HOBMemoryAllocStack", HOBMemoryAllocStack, HOB,
		"Stack memory allocation HOB of the HOB producer phase"},
}

var (
	byName = make(map[string]int, 2*len(registry))
	byGUID = make(map[guid.GUID]int, len(registry))
)

func init() {
	for i, e := range registry {
		for _, key := range []string{e.Name, e.GoName} {
			key = strings.ToUpper(key)
			if j, dup := byName[key]; dup && j != i {
				panic(fmt.Sprintf("guids: %s and %s share registry name %s", registry[j].Name, e.Name, key))
			}
			byName[key] = i
		}
		if j, dup := byGUID[e.GUID]; dup {
			panic(fmt.Sprintf("guids: %s and %s share GUID %v", registry[j].Name, e.Name, e.GUID))
		}
		byGUID[e.GUID] = i
	}
}

// All returns every registered GUID in declaration order. The slice is a
// copy and may be modified by the caller.
func All() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds an entry by its firmware name (DXE_CORE) or Go name (DXECore),
// ignoring case.
func Lookup(name string) (Entry, error) {
	i, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	return registry[i], nil
}

// ByGUID finds the entry registered for g.
func ByGUID(g guid.GUID) (Entry, bool) {
	i, ok := byGUID[g]
	if !ok {
		return Entry{}, false
	}
	return registry[i], true
}

// Resolve accepts either a registered name or GUID text. Text that parses as
// a GUID but is not registered is reported as ErrNotFound.
func Resolve(s string) (Entry, error) {
	if e, err := Lookup(s); err == nil {
		return e, nil
	}
	g, err := guid.Parse(s)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q is neither a registered name nor a GUID", ErrNotFound, s)
	}
	e, ok := ByGUID(g)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %v", ErrNotFound, g)
	}
	return e, nil
}

// Name returns the registered name of g, or its canonical text if g is
// unknown.
func Name(g guid.GUID) string {
	if e, ok := ByGUID(g); ok {
		return e.Name
	}
	return g.String()
}
