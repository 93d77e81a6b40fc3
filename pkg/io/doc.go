// Package io provides JSON import and export for board declarations.
//
// # JSON Format
//
// The format mirrors the element tree handed to the rendering engine:
//
//	{
//	  "board": {"name": "dual-buffer", "width": "80mm", "height": "50mm"},
//	  "groups": [
//	    {
//	      "name": "BUF_A",
//	      "components": [
//	        {"kind": "capacitor", "name": "BUF_A_C_IN", "value": "100nF",
//	         "footprint": "0805", "sch_x": -9, "sch_y": -5,
//	         "pcb_x": -25, "pcb_y": -10}
//	      ],
//	      "nets": [{"name": "BUF_A_GND"}],
//	      "traces": [{"from": ".BUF_A_C_IN > .pin1", "to": "net.BUF_A_GND"}]
//	    }
//	  ]
//	}
//
// Chips additionally carry "pin_labels", "sch_pin_arrangement" and
// "supplier_part_numbers".
//
// # Import
//
// [ReadJSON] and [ImportJSON] decode a board and validate it, so an
// imported board satisfies the same constraints as one built from a
// config: unique names, known pins, and traces that resolve.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write every group, component, net and
// trace. Export followed by import yields an equal board.
package io
