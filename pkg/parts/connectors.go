package parts

// Screw terminals are Phoenix Contact style, 5.08mm pitch.

var screwTerminal2Pins = map[string]string{"pin1": "P1", "pin2": "P2"}

// ScrewTerminal2 is a 2-position terminal (signal + ground).
var ScrewTerminal2 = Part{
	Name:        "ScrewTerminal2",
	Description: "2-position screw terminal, 5.08mm",
	Footprint:   "pinrow2",
	PinLabels:   screwTerminal2Pins,
	Arrangement: leftColumn(screwTerminal2Pins),
}

var screwTerminal3Pins = map[string]string{"pin1": "P1", "pin2": "P2", "pin3": "P3"}

// ScrewTerminal3 is a 3-position terminal (+V, GND, -V).
var ScrewTerminal3 = Part{
	Name:        "ScrewTerminal3",
	Description: "3-position screw terminal, 5.08mm",
	Footprint:   "pinrow3",
	PinLabels:   screwTerminal3Pins,
	Arrangement: leftColumn(screwTerminal3Pins),
}

var screwTerminal6Pins = map[string]string{
	"pin1": "P1", "pin2": "P2", "pin3": "P3",
	"pin4": "P4", "pin5": "P5", "pin6": "P6",
}

// ScrewTerminal6 is a 6-position terminal (frequency selector send/return).
var ScrewTerminal6 = Part{
	Name:        "ScrewTerminal6",
	Description: "6-position screw terminal, 5.08mm",
	Footprint:   "pinrow6",
	PinLabels:   screwTerminal6Pins,
	Arrangement: leftColumn(screwTerminal6Pins),
}

var monoJackPins = map[string]string{"pin1": "TIP", "pin2": "SLEEVE"}

// MonoJack is a TS audio jack.
// TODO: replace the pinrow2 stand-in with a real jack footprint.
var MonoJack = Part{
	Name:        "MonoJack",
	Description: "Mono audio jack (tip, sleeve)",
	Footprint:   "pinrow2",
	PinLabels:   monoJackPins,
	Arrangement: leftColumn(monoJackPins),
}

var stereoJackPins = map[string]string{"pin1": "TIP", "pin2": "RING", "pin3": "SLEEVE"}

// StereoJack is a TRS audio jack.
var StereoJack = Part{
	Name:        "StereoJack",
	Description: "Stereo audio jack (tip, ring, sleeve)",
	Footprint:   "pinrow3",
	PinLabels:   stereoJackPins,
	Arrangement: leftColumn(stereoJackPins),
}
