// Package guids defines GUIDs that are used for common and generic events
// between firmware drivers but are not all defined in a formal specification.
//
// The values are fixed by convention with other firmware components and must
// not change. Besides the named variables, the package keeps a read-only
// registry (see All, Lookup and ByGUID) so tools can resolve a GUID found in a
// firmware structure back to its name.
package guids

import "github.com/google/go-uefi-guids/guid"

var (
	// CacheAttributeChangeEventGroup is the event group signaled when the
	// cache attributes for a memory region are changed. It is intended for
	// architectures, such as x86, that must propagate cache attribute changes
	// to all APs.
	//
	// B8E477C7-26A9-4B9A-A7C9-5F8F1F3D9C7B
	CacheAttributeChangeEventGroup = guid.FromFields(0xb8e477c7, 0x26a9, 0x4b9a, 0xa7, 0xc9, [6]byte{0x5f, 0x8f, 0x1f, 0x3d, 0x9c, 0x7b})

	// DXECore is the FFS file GUID of the DXE Core module. Interfaces keyed
	// on a module GUID, such as the Memory Allocation Module HOB and status
	// codes produced by the DXE Core, use it. Platforms that put the DXE Core
	// in a firmware volume should name the FFS file with it.
	//
	// 23C9322F-2AF2-476A-BC4C-26BC88266C71
	DXECore = guid.FromFields(0x23C9322F, 0x2AF2, 0x476A, 0xBC, 0x4C, [6]byte{0x26, 0xBC, 0x88, 0x26, 0x6C, 0x71})

	// EBSFailed is the event group signaled when ExitBootServices() fails,
	// for example because the caller's memory map key is stale. It is
	// signaled just before the error returns to the caller.
	//
	// 4F6C5507-232F-4787-B95E-72F862490CB1
	EBSFailed = guid.FromFields(0x4f6c5507, 0x232f, 0x4787, 0xb9, 0x5e, [6]byte{0x72, 0xf8, 0x62, 0x49, 0x0c, 0xb1})

	// EDKIIFPDTExtendedFirmwarePerformance marks performance report HOBs, the
	// status code carrying the FBPT address and the configuration table
	// holding the FBPT address.
	//
	// 3B387BFD-7ABC-4CF2-A0CA-B6A16C1B1B25
	EDKIIFPDTExtendedFirmwarePerformance = guid.FromFields(0x3b387bfd, 0x7abc, 0x4cf2, 0xa0, 0xca, [6]byte{0xb6, 0xa1, 0x6c, 0x1b, 0x1b, 0x25})

	// EventGroupEndOfDXE is the End of DXE event group.
	//
	// 02CE967A-DD7E-4FFC-9EE7-810CF0470880
	EventGroupEndOfDXE = guid.FromFields(0x2ce967a, 0xdd7e, 0x4ffc, 0x9e, 0xe7, [6]byte{0x81, 0xc, 0xf0, 0x47, 0x8, 0x80})

	// HardwareInterruptProtocol registers and unregisters interrupt handlers
	// on AARCH64 systems.
	//
	// 2890B3EA-053D-1643-AD0C-D64808DA3FF1
	HardwareInterruptProtocol = guid.FromFields(0x2890B3EA, 0x053D, 0x1643, 0xAD, 0x0C, [6]byte{0xD6, 0x48, 0x08, 0xDA, 0x3F, 0xF1})

	// HardwareInterruptProtocolV2 extends HardwareInterruptProtocol with
	// interrupt type queries.
	//
	// 32898322-2DA1-474A-BAAA-F3F7CF569470
	HardwareInterruptProtocolV2 = guid.FromFields(0x32898322, 0x2da1, 0x474a, 0xba, 0xaa, [6]byte{0xf3, 0xf7, 0xcf, 0x56, 0x94, 0x70})

	// MemoryTypeInformation keys the memory type information HOB and
	// variable. It may also be used as the Owner of a Resource Descriptor HOB
	// to give the preferred range for the memory types described there.
	//
	// 4C19049F-4137-4DD3-9C10-8B97A83FFDFA
	MemoryTypeInformation = guid.FromFields(0x4C19049F, 0x4137, 0x4DD3, 0x9C, 0x10, [6]byte{0x8B, 0x97, 0xA8, 0x3F, 0xFD, 0xFA})

	// PerformanceProtocol adds performance records to the Firmware Basic Boot
	// Performance Table (FBPT).
	//
	// 76B6BDFA-2ACD-4462-9E3F-CB58C969D937
	PerformanceProtocol = guid.FromFields(0x76b6bdfa, 0x2acd, 0x4462, 0x9E, 0x3F, [6]byte{0xcb, 0x58, 0xC9, 0x69, 0xd9, 0x37})

	// SMMCommunicationProtocol is the EFI SMM Communication Protocol from PI
	// 1.2, used by drivers outside SMM to reach SMI handlers inside SMM.
	//
	// C68ED8E2-9DC6-4CBD-9D94-DB65ACC5C332
	SMMCommunicationProtocol = guid.FromFields(0xc68ed8e2, 0x9dc6, 0x4cbd, 0x9d, 0x94, [6]byte{0xdb, 0x65, 0xac, 0xc5, 0xc3, 0x32})

	// Zero is the all-zero GUID, used as a marker or placeholder.
	Zero = guid.FromFields(0, 0, 0, 0, 0, [6]byte{0, 0, 0, 0, 0, 0})

	// HOBMemoryAllocStack (EFI_HOB_MEMORY_ALLOC_STACK_GUID) describes the
	// stack produced by the HOB producer phase, on which all post-memory code
	// of that phase runs.
	//
	// 4ED4BF27-4092-42E9-807D-527B1D00C9BD
	HOBMemoryAllocStack = guid.FromFields(0x4ed4bf27, 0x4092, 0x42e9, 0x80, 0x7d, [6]byte{0x52, 0x7b, 0x1d, 0x00, 0xc9, 0xbd})
)
