// Package script loads replay scripts: a YAML description of a small scene
// and the change events to play against it.
//
//	nodes:
//	  - id: lamp
//	    kind: SpotLight
//	    name: Desk lamp
//	  - id: sun
//	    kind: DirectionalLight
//	    split_mode: relative
//	events:
//	  - target: lamp
//	    event:
//	      name: HotspotConeAngle
//	      leaf: {float: 0.7}
//	  - target: lamp
//	    event:
//	      name: Base
//	      nested:
//	        name: Color
//	        leaf: {color: "#ff0000"}
//	  - target: sun
//	    event:
//	      name: CsmOptions
//	      nested:
//	        name: SplitOptions
//	        nested:
//	          name: RelativeFractions
//	          collection:
//	            item_changed: {index: 1, leaf: {float: 0.5}}
//
// A leaf names its Go type explicitly (float, bool, string, color, vector,
// texture) because YAML scalars carry no type the dispatchers could rely on.
package script
