package parts

import "github.com/matzehuels/audiocircuits/pkg/circuit"

// TL072 pin labels. Channel A is pins 1-3, channel B pins 5-7.
const (
	TL072OutA = "OUTA"
	TL072InAN = "INA_N"
	TL072InAP = "INA_P"
	TL072VEE  = "VEE"
	TL072InBP = "INB_P"
	TL072InBN = "INB_N"
	TL072OutB = "OUTB"
	TL072VCC  = "VCC"
)

// TL072 is a dual JFET-input op-amp in DIP-8 / SOIC-8.
var TL072 = Part{
	Name:        "TL072",
	Description: "Dual JFET-input op-amp",
	Footprint:   "soic8",
	PinLabels: map[string]string{
		"pin1": TL072OutA,
		"pin2": TL072InAN,
		"pin3": TL072InAP,
		"pin4": TL072VEE,
		"pin5": TL072InBP,
		"pin6": TL072InBN,
		"pin7": TL072OutB,
		"pin8": TL072VCC,
	},
	Arrangement: circuit.PinArrangement{
		LeftSide:   &circuit.Side{Direction: circuit.TopToBottom, Pins: []string{TL072InAP, TL072InAN, TL072InBP, TL072InBN}},
		RightSide:  &circuit.Side{Direction: circuit.TopToBottom, Pins: []string{TL072OutA, TL072OutB}},
		TopSide:    &circuit.Side{Direction: circuit.LeftToRight, Pins: []string{TL072VCC}},
		BottomSide: &circuit.Side{Direction: circuit.LeftToRight, Pins: []string{TL072VEE}},
	},
	Supplier: map[string][]string{
		"jlcpcb": {"C6961"}, // TL072CDT
	},
}
