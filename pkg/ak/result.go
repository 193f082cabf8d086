package ak

import (
	"errors"
	"fmt"
)

// Result is the engine's result code. Every value other than Success is an
// error; its Error text is a fixed sentence per kind.
type Result int32

// Result codes, numbered as the engine numbers them.
const (
	NotImplemented              Result = 0
	Success                     Result = 1
	Fail                        Result = 2
	PartialSuccess              Result = 3
	NotCompatible               Result = 4
	AlreadyConnected            Result = 5
	InvalidFile                 Result = 7
	AudioFileHeaderTooLarge     Result = 8
	MaxReached                  Result = 9
	InvalidID                   Result = 14
	IDNotFound                  Result = 15
	InvalidInstanceID           Result = 16
	NoMoreData                  Result = 17
	InvalidStateGroup           Result = 20
	ChildAlreadyHasAParent      Result = 21
	InvalidLanguage             Result = 22
	CannotAddItselfAsAChild     Result = 23
	InvalidParameter            Result = 31
	ElementAlreadyInList        Result = 35
	PathNotFound                Result = 36
	PathNoVertices              Result = 37
	PathNotRunning              Result = 38
	PathNotPaused               Result = 39
	PathNodeAlreadyInList       Result = 40
	PathNodeNotInList           Result = 41
	DataNeeded                  Result = 43
	NoDataNeeded                Result = 44
	DataReady                   Result = 45
	NoDataReady                 Result = 46
	InsufficientMemory          Result = 52
	Cancelled                   Result = 53
	UnknownBankID               Result = 54
	BankReadError               Result = 56
	InvalidSwitchType           Result = 57
	FormatNotReady              Result = 63
	WrongBankVersion            Result = 64
	FileNotFound                Result = 66
	DeviceNotReady              Result = 67
	BankAlreadyLoaded           Result = 69
	RenderedFX                  Result = 71
	ProcessNeeded               Result = 72
	ProcessDone                 Result = 73
	MemManagerNotInitialized    Result = 74
	StreamMgrNotInitialized     Result = 75
	SSEInstructionsNotSupported Result = 76
	Busy                        Result = 77
	UnsupportedChannelConfig    Result = 78
	PluginMediaNotAvailable     Result = 79
	MustBeVirtualized           Result = 80
	CommandTooLarge             Result = 81
	RejectedByFilter            Result = 82
	InvalidCustomPlatformName   Result = 83
	DLLCannotLoad               Result = 84
	DLLPathNotFound             Result = 85
	NoJavaVM                    Result = 86
	OpenSLError                 Result = 87
	PluginNotRegistered         Result = 88
	DataAlignmentError          Result = 89
	DeviceNotCompatible         Result = 90
	DuplicateUniqueID           Result = 91
	InitBankNotLoaded           Result = 92
	DeviceNotFound              Result = 93
	PlayingIDNotFound           Result = 94
	InvalidFloatValue           Result = 95
	FileFormatMismatch          Result = 96
	NoDistinctListener          Result = 97
	ACPError                    Result = 98
	ResourceInUse               Result = 99
	InvalidBankType             Result = 100
	AlreadyInitialized          Result = 101
	NotInitialized              Result = 102
	FilePermissionError         Result = 103
	UnknownFileError            Result = 104
)

var resultText = map[Result]string{
	NotImplemented:              "this feature is not implemented",
	Success:                     "the operation was successful",
	Fail:                        "the operation failed",
	PartialSuccess:              "the operation succeeded partially",
	NotCompatible:               "incompatible formats",
	AlreadyConnected:            "the stream is already connected to another node",
	InvalidFile:                 "an unexpected value causes the file to be invalid",
	AudioFileHeaderTooLarge:     "the file header is too large",
	MaxReached:                  "the maximum was reached",
	InvalidID:                   "the ID is invalid",
	IDNotFound:                  "the ID was not found",
	InvalidInstanceID:           "the InstanceID is invalid",
	NoMoreData:                  "no more data is available from the source",
	InvalidStateGroup:           "the StateGroup is not a valid channel",
	ChildAlreadyHasAParent:      "the child already has a parent",
	InvalidLanguage:             "the language is invalid (applies to the Low-Level I/O)",
	CannotAddItselfAsAChild:     "it is not possible to add itself as its own child",
	InvalidParameter:            "something is not within bounds",
	ElementAlreadyInList:        "the item could not be added because it was already in the list",
	PathNotFound:                "this path is not known",
	PathNoVertices:              "the path has no vertices",
	PathNotRunning:              "only a running path can be paused",
	PathNotPaused:               "only a paused path can be resumed",
	PathNodeAlreadyInList:       "this path is already there",
	PathNodeNotInList:           "this path is not there",
	DataNeeded:                  "the consumer needs more",
	NoDataNeeded:                "the consumer does not need more",
	DataReady:                   "the provider has available data",
	NoDataReady:                 "the provider does not have available data",
	InsufficientMemory:          "memory error",
	Cancelled:                   "the requested action was cancelled (not an error)",
	UnknownBankID:               "trying to load a bank using an ID which is not defined",
	BankReadError:               "error while reading a bank",
	InvalidSwitchType:           "invalid switch type (used with the switch container)",
	FormatNotReady:              "source format not known yet",
	WrongBankVersion:            "the bank version is not compatible with the current bank reader",
	FileNotFound:                "file not found",
	DeviceNotReady:              "specified ID doesn't match a valid hardware device: either the device doesn't exist or is disabled",
	BankAlreadyLoaded:           "the bank load failed because the bank is already loaded",
	RenderedFX:                  "the effect on the node is rendered",
	ProcessNeeded:               "a routine needs to be executed on some CPU",
	ProcessDone:                 "the executed routine has finished its execution",
	MemManagerNotInitialized:    "the memory manager should have been initialized at this point",
	StreamMgrNotInitialized:     "the stream manager should have been initialized at this point",
	SSEInstructionsNotSupported: "the machine does not support SSE instructions (required on PC)",
	Busy:                        "the system is busy and could not process the request",
	UnsupportedChannelConfig:    "channel configuration is not supported in the current execution context",
	PluginMediaNotAvailable:     "plugin media is not available for effect",
	MustBeVirtualized:           "sound was not allowed to play",
	CommandTooLarge:             "SDK command is too large to fit in the command queue",
	RejectedByFilter:            "a play request was rejected due to the MIDI filter parameters",
	InvalidCustomPlatformName:   "detecting incompatibility between custom platform of banks and custom platform of connected application",
	DLLCannotLoad:               "plugin DLL could not be loaded, either because it is not found or one dependency is missing",
	DLLPathNotFound:             "plugin DLL search path could not be found",
	NoJavaVM:                    "no Java VM provided in the init settings",
	OpenSLError:                 "OpenSL returned an error, check error log for more details",
	PluginNotRegistered:         "plugin is not registered, make sure it is linked and registered in the game binary",
	DataAlignmentError:          "a pointer to audio data was not aligned to the platform's required alignment",
	DeviceNotCompatible:         "incompatible audio device",
	DuplicateUniqueID:           "two objects share the same ID",
	InitBankNotLoaded:           "the Init bank was not loaded yet, the sound engine isn't completely ready yet",
	DeviceNotFound:              "the specified device ID does not match with any of the output devices that the sound engine is currently using",
	PlayingIDNotFound:           "calling a function with a playing ID that is not known",
	InvalidFloatValue:           "one parameter has a invalid float value such as NaN, INF or FLT_MAX",
	FileFormatMismatch:          "media file format unexpected",
	NoDistinctListener:          "no distinct listener provided for AddOutput",
	ACPError:                    "generic XMA decoder error",
	ResourceInUse:               "resource is in use and cannot be released",
	InvalidBankType:             "invalid bank type",
	AlreadyInitialized:          "Init() was called but that element was already initialized",
	NotInitialized:              "the component being used is not initialized",
	FilePermissionError:         "the file access permissions prevent opening a file",
	UnknownFileError:            "rare file error occurred, as opposed to file not found or permission error",
}

// Results lists every known result code in ascending order.
func Results() []Result {
	out := make([]Result, 0, len(resultText))
	for r := NotImplemented; r <= UnknownFileError; r++ {
		if _, ok := resultText[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Error returns the fixed sentence for the result kind.
func (r Result) Error() string {
	if text, ok := resultText[r]; ok {
		return text
	}
	return fmt.Sprintf("unknown engine result %d", int32(r))
}

// Known reports whether r is one of the engine's result codes.
func (r Result) Known() bool {
	_, ok := resultText[r]
	return ok
}

// Check maps Success to nil and every other result to itself as an error.
func Check(r Result) error {
	if r == Success {
		return nil
	}
	return r
}

// ResultOf extracts the engine result wrapped anywhere in err.
func ResultOf(err error) (Result, bool) {
	var r Result
	if errors.As(err, &r) {
		return r, true
	}
	return 0, false
}
