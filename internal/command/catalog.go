package command

// builtinDescriptors is the full catalog of commands the Nuke bridge
// add-on understands. Names, argument shapes, and defaults mirror the
// add-on exactly; the bridge never invents commands of its own.
func builtinDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name: "createNode",
			Desc: "Create a node in the Nuke node graph. Optionally name it and connect its inputs to existing nodes.",
			Params: []Param{
				{Name: "nodeType", Kind: String, Required: true, Desc: "Node class to create (e.g. Blur, Grade, Merge2)"},
				{Name: "name", Kind: String, Desc: "Name for the new node; Nuke picks one if omitted"},
				{Name: "inputs", Kind: Array, Elem: String, Desc: "Names of nodes to connect as inputs, in input order"},
			},
		},
		{
			Name: "setKnobValue",
			Desc: "Set a knob on an existing node. The value may be a number, string, boolean, or flat array (e.g. an RGBA color).",
			Params: []Param{
				{Name: "nodeName", Kind: String, Required: true, Desc: "Node whose knob to set"},
				{Name: "knobName", Kind: String, Required: true, Desc: "Knob to set"},
				{Name: "value", Kind: Knob, Required: true, Desc: "New knob value"},
			},
		},
		{
			Name: "getNode",
			Desc: "Return a node's class, position, and knob values.",
			Params: []Param{
				{Name: "nodeName", Kind: String, Required: true, Desc: "Node to inspect"},
			},
		},
		{
			Name: "execute",
			Desc: "Render a frame range through a Write node.",
			Params: []Param{
				{Name: "writeNodeName", Kind: String, Required: true, Desc: "Write node to execute"},
				{Name: "frameRangeStart", Kind: Number, Required: true, Desc: "First frame to render"},
				{Name: "frameRangeEnd", Kind: Number, Required: true, Desc: "Last frame to render"},
			},
		},
		{
			Name: "connectNodes",
			Desc: "Connect one node's output into another node's input.",
			Params: []Param{
				{Name: "inputNode", Kind: String, Required: true, Desc: "Node providing the output"},
				{Name: "outputNode", Kind: String, Required: true, Desc: "Node receiving the connection"},
				{Name: "inputIndex", Kind: Number, Default: float64(0), Desc: "Input slot on the receiving node"},
			},
		},
		{
			Name: "setNodePosition",
			Desc: "Move a node to an absolute position in the node graph.",
			Params: []Param{
				{Name: "nodeName", Kind: String, Required: true, Desc: "Node to move"},
				{Name: "xPos", Kind: Number, Required: true, Desc: "X position in the graph"},
				{Name: "yPos", Kind: Number, Required: true, Desc: "Y position in the graph"},
			},
		},
		{
			Name: "getNodePosition",
			Desc: "Return a node's position in the node graph.",
			Params: []Param{
				{Name: "nodeName", Kind: String, Required: true, Desc: "Node to inspect"},
			},
		},
		{
			Name: "createGroup",
			Desc: "Collect nodes into a Group node.",
			Params: []Param{
				{Name: "name", Kind: String, Desc: "Name for the group"},
				{Name: "nodeNames", Kind: Array, Elem: String, Desc: "Nodes to collect into the group"},
			},
		},
		{
			Name: "createLiveGroup",
			Desc: "Collect nodes into a LiveGroup, optionally publishing it to a file for collaborative workflows.",
			Params: []Param{
				{Name: "name", Kind: String, Desc: "Name for the LiveGroup"},
				{Name: "nodeNames", Kind: Array, Elem: String, Desc: "Nodes to collect into the LiveGroup"},
				{Name: "filePath", Kind: String, Desc: "Publish the LiveGroup to this .nk file"},
			},
		},
		{
			Name: "loadTemplate",
			Desc: "Paste a saved node template into the graph.",
			Params: []Param{
				{Name: "templateName", Kind: String, Required: true, Desc: "Template to load"},
				{Name: "position", Kind: Object, Desc: "Where to place the pasted nodes", Fields: []Param{
					{Name: "x", Kind: Number, Desc: "X position"},
					{Name: "y", Kind: Number, Desc: "Y position"},
				}},
			},
		},
		{
			Name: "saveTemplate",
			Desc: "Save a set of nodes as a reusable template.",
			Params: []Param{
				{Name: "templateName", Kind: String, Required: true, Desc: "Name to save the template under"},
				{Name: "nodeNames", Kind: Array, Elem: String, Required: true, Desc: "Nodes to include in the template"},
				{Name: "category", Kind: String, Desc: "Template category folder"},
			},
		},
		{
			Name: "listNodes",
			Desc: "List nodes in the current script, optionally filtered by node class.",
			Params: []Param{
				{Name: "filter", Kind: String, Desc: "Only list nodes of this class"},
			},
		},
		{
			Name: "runPythonScript",
			Desc: "Run arbitrary Python inside the Nuke session and return its result.",
			Params: []Param{
				{Name: "script", Kind: String, Required: true, Desc: "Python source to execute"},
				{Name: "args", Kind: Object, FreeForm: true, Desc: "Variables made available to the script"},
			},
		},
		{
			Name: "loadScript",
			Desc: "Open a .nk script, replacing the current one.",
			Params: []Param{
				{Name: "filePath", Kind: String, Required: true, Desc: "Path of the script to open"},
			},
		},
		{
			Name: "saveScript",
			Desc: "Save the current script to a .nk file.",
			Params: []Param{
				{Name: "filePath", Kind: String, Required: true, Desc: "Path to save the script to"},
			},
		},
		{
			Name: "setProjectSettings",
			Desc: "Set project frame range, output resolution, and frame rate.",
			Params: []Param{
				{Name: "frameRange", Kind: Object, Desc: "Project frame range", Fields: []Param{
					{Name: "first", Kind: Number, Desc: "First frame"},
					{Name: "last", Kind: Number, Desc: "Last frame"},
				}},
				{Name: "resolution", Kind: Object, Desc: "Output resolution", Fields: []Param{
					{Name: "width", Kind: Number, Desc: "Width in pixels"},
					{Name: "height", Kind: Number, Desc: "Height in pixels"},
				}},
				{Name: "fps", Kind: Number, Desc: "Frames per second"},
			},
		},
		{
			Name: "createCameraTracker",
			Desc: "Create a CameraTracker node on a source and start feature tracking.",
			Params: []Param{
				{Name: "sourceName", Kind: String, Required: true, Desc: "Footage node to track"},
				{Name: "trackingFeatures", Kind: Object, Desc: "Feature detection settings", Fields: []Param{
					{Name: "numberFeatures", Kind: Number, Desc: "Number of features to track"},
					{Name: "featureSize", Kind: Number, Desc: "Feature patch size"},
					{Name: "featureSeparation", Kind: Number, Desc: "Minimum separation between features"},
				}},
			},
		},
		{
			Name: "solveCameraTrack",
			Desc: "Solve the camera from tracked features on a CameraTracker node.",
			Params: []Param{
				{Name: "cameraTrackerNode", Kind: String, Required: true, Desc: "CameraTracker node to solve"},
				{Name: "solveMethod", Kind: String, Enum: []string{"Match-Moving", "Full", "Refine"}, Default: "Match-Moving", Desc: "Solver mode"},
			},
		},
		{
			Name: "createScene",
			Desc: "Build a 3D Scene node, optionally wiring in a camera and geometry.",
			Params: []Param{
				{Name: "cameraNode", Kind: String, Desc: "Camera node to attach"},
				{Name: "geometryNodes", Kind: Array, Elem: String, Desc: "Geometry nodes to attach"},
			},
		},
		{
			Name: "setupDeepPipeline",
			Desc: "Merge deep image streams with DeepMerge nodes.",
			Params: []Param{
				{Name: "inputNodes", Kind: Array, Elem: String, Required: true, Desc: "Deep streams to merge, in order"},
				{Name: "mergeOperation", Kind: String, Default: "over", Desc: "DeepMerge operation"},
			},
		},
		{
			Name: "batchProcess",
			Desc: "Process every matching file in a directory through a Read/Write pipeline.",
			Params: []Param{
				{Name: "inputDirectory", Kind: String, Required: true, Desc: "Directory of source files"},
				{Name: "outputDirectory", Kind: String, Required: true, Desc: "Directory for processed output"},
				{Name: "filePattern", Kind: String, Default: "*", Desc: "Glob selecting which files to process"},
				{Name: "processScript", Kind: String, Desc: "Python applied to each file between Read and Write"},
			},
		},
		{
			Name: "setupCopyCat",
			Desc: "Create a CopyCat machine-learning node wired to training input and ground-truth nodes.",
			Params: []Param{
				{Name: "trainingInputNode", Kind: String, Required: true, Desc: "Node providing training inputs"},
				{Name: "trainingOutputNode", Kind: String, Required: true, Desc: "Node providing ground-truth outputs"},
				{Name: "networkType", Kind: String, Enum: []string{"Basic", "UNet", "Extended"}, Default: "Basic", Desc: "Network architecture"},
			},
		},
		{
			Name: "trainCopyCatModel",
			Desc: "Start training a CopyCat node. Training runs inside Nuke and can take hours.",
			Params: []Param{
				{Name: "copyCatNodeName", Kind: String, Required: true, Desc: "CopyCat node to train"},
				{Name: "epochs", Kind: Number, Default: float64(100), Desc: "Training epochs"},
				{Name: "batchSize", Kind: Number, Default: float64(4), Desc: "Training batch size"},
			},
		},
		{
			Name: "setupBasicComp",
			Desc: "Build a standard comp tree over a plate: merges for foreground elements, background handling, and a Write node.",
			Params: []Param{
				{Name: "plateNode", Kind: String, Required: true, Desc: "Main plate node"},
				{Name: "fgElements", Kind: Array, Elem: String, Desc: "Foreground element nodes, merged over the plate"},
				{Name: "bgElements", Kind: Array, Elem: String, Desc: "Background element nodes, merged under the plate"},
			},
		},
		{
			Name: "setupKeyer",
			Desc: "Create a keyer on a node for green/blue screen extraction.",
			Params: []Param{
				{Name: "inputNodeName", Kind: String, Required: true, Desc: "Node to key"},
				{Name: "keyerType", Kind: String, Enum: []string{"Primatte", "IBK", "Keylight", "UltraKeyer"}, Default: "Primatte", Desc: "Keyer algorithm"},
				{Name: "screenColor", Kind: Array, Elem: Number, Desc: "Screen color to key out, as RGB components"},
			},
		},
		{
			Name: "setupMotionBlur",
			Desc: "Add motion blur to a node using motion vectors, creating a VectorGenerator when no vector node is supplied.",
			Params: []Param{
				{Name: "inputNodeName", Kind: String, Required: true, Desc: "Node to blur"},
				{Name: "vectorNodeName", Kind: String, Desc: "Node providing motion vectors"},
				{Name: "motionBlurSamples", Kind: Number, Default: float64(10), Desc: "Blur sample count"},
			},
		},
	}
}
