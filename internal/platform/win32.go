package platform

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/logandonley/docprint/pkg/printing"
)

// enumerateScript lists Win32_Printer instances as compact JSON
const enumerateScript = "Get-CimInstance -ClassName Win32_Printer | " +
	"Select-Object Name, Default, Capabilities | ConvertTo-Json -Compress"

// Win32_Printer.Capabilities values
const (
	capabilityColor  = 2
	capabilityDuplex = 3
)

type win32Printer struct {
	Name         string `json:"Name"`
	Default      bool   `json:"Default"`
	Capabilities []int  `json:"Capabilities"`
}

// parseWin32Printers decodes ConvertTo-Json output, which is a bare object
// for a single printer and an array otherwise
func parseWin32Printers(data []byte) ([]printing.PrinterInfo, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raw []win32Printer
	if data[0] == '[' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding printer list: %w", err)
		}
	} else {
		var single win32Printer
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("decoding printer list: %w", err)
		}
		raw = append(raw, single)
	}

	printers := make([]printing.PrinterInfo, 0, len(raw))
	for _, p := range raw {
		info := printing.PrinterInfo{
			Name:      p.Name,
			IsDefault: p.Default,
		}
		for _, c := range p.Capabilities {
			switch c {
			case capabilityColor:
				info.SupportsColor = true
			case capabilityDuplex:
				info.SupportsDuplex = true
			}
		}
		printers = append(printers, info)
	}
	return printers, nil
}

// splitDefault returns the printer names and the default printer's name
func splitDefault(printers []printing.PrinterInfo) (names []string, defaultName string) {
	for _, p := range printers {
		names = append(names, p.Name)
		if p.IsDefault {
			defaultName = p.Name
		}
	}
	return names, defaultName
}
