// Package config provides configuration management for huectl.
//
// Configuration is loaded from YAML files and merged in order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (embedded in binary)
//  2. User configuration (~/.config/huectl/config.yaml)
//  3. Project configuration (./.huectl/config.yaml)
//
// Command-line flags are applied last, with MergeConfigs, per invocation.
//
// # Configuration Structure
//
//	color:
//	  illuminant: D50        # A, B, C, D50, D55, D65, D75, E, F1 ... F12
//	  observer: "10"         # 2 or 10 degrees
//	  alphaPosition: end     # none, end or start
//	  adaptation: bradford   # none or bradford
//	  nameTolerance:
//	    ignoreCase: true
//	    ignoreWhitespace: true
//	    ignorePunctuation: true
//	    allowPartial: false
//
//	ui:
//	  defaultNotation: hex
//	  notations: [hex, rgb, hsl, cielab, name]
//	  output: table          # table, plain, json or yaml
//
// Illuminant, observer and adaptation only affect the CIELAB and Hunter Lab
// notations. The alpha position applies to Hex, RGB, HSL, HSV and HWB.
//
// Every loaded configuration is validated; unknown values are reported
// together with the path of the offending key. Settings are read for each
// command invocation and handed to the notation core as a notation.Config,
// which never caches them.
package config
