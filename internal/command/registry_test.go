package command

import (
	"strings"
	"testing"
)

func TestRegisterRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	d := Descriptor{Name: "createNode", Desc: "first"}
	if err := r.Register(d); err != nil {
		t.Fatalf("Register() error = %v, want nil", err)
	}
	err := r.Register(Descriptor{Name: "createNode", Desc: "second"})
	if err == nil {
		t.Fatal("Register(duplicate) error = nil, want error")
	}
	if !strings.Contains(err.Error(), `"createNode"`) {
		t.Fatalf("Register(duplicate) error = %q, want name in message", err)
	}
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Descriptor{}); err == nil {
		t.Fatal("Register(empty name) error = nil, want error")
	}
}

func TestDescriptorsKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(Descriptor{Name: name}); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}
	got := r.Descriptors()
	want := []string{"zeta", "alpha", "mid"}
	for i, d := range got {
		if d.Name != want[i] {
			t.Fatalf("Descriptors()[%d].Name = %q, want %q", i, d.Name, want[i])
		}
	}
}

func TestBuiltinCatalog(t *testing.T) {
	reg, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	descs := reg.Descriptors()
	if len(descs) != 26 {
		t.Fatalf("len(Descriptors()) = %d, want 26", len(descs))
	}

	required := map[string][]string{
		"createNode":       {"nodeType"},
		"setKnobValue":     {"nodeName", "knobName", "value"},
		"execute":          {"writeNodeName", "frameRangeStart", "frameRangeEnd"},
		"connectNodes":     {"inputNode", "outputNode"},
		"saveTemplate":     {"templateName", "nodeNames"},
		"runPythonScript":  {"script"},
		"batchProcess":     {"inputDirectory", "outputDirectory"},
		"setupCopyCat":     {"trainingInputNode", "trainingOutputNode"},
		"setupBasicComp":   {"plateNode"},
		"setProjectSettings": nil,
		"listNodes":          nil,
	}
	for name, wantRequired := range required {
		d, ok := reg.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) = false, want true", name)
		}
		var gotRequired []string
		for _, p := range d.Params {
			if p.Required {
				gotRequired = append(gotRequired, p.Name)
			}
		}
		if len(gotRequired) != len(wantRequired) {
			t.Fatalf("%s required = %v, want %v", name, gotRequired, wantRequired)
		}
		for i := range wantRequired {
			if gotRequired[i] != wantRequired[i] {
				t.Fatalf("%s required = %v, want %v", name, gotRequired, wantRequired)
			}
		}
	}

	defaults := map[string]map[string]any{
		"connectNodes":      {"inputIndex": float64(0)},
		"solveCameraTrack":  {"solveMethod": "Match-Moving"},
		"setupDeepPipeline": {"mergeOperation": "over"},
		"batchProcess":      {"filePattern": "*"},
		"setupCopyCat":      {"networkType": "Basic"},
		"trainCopyCatModel": {"epochs": float64(100), "batchSize": float64(4)},
		"setupKeyer":        {"keyerType": "Primatte"},
		"setupMotionBlur":   {"motionBlurSamples": float64(10)},
	}
	for name, want := range defaults {
		d, _ := reg.Lookup(name)
		for param, wantDefault := range want {
			var found bool
			for _, p := range d.Params {
				if p.Name == param {
					found = true
					if p.Default != wantDefault {
						t.Fatalf("%s.%s default = %v, want %v", name, param, p.Default, wantDefault)
					}
				}
			}
			if !found {
				t.Fatalf("%s has no param %q", name, param)
			}
		}
	}

	enums := map[string]map[string][]string{
		"solveCameraTrack": {"solveMethod": {"Match-Moving", "Full", "Refine"}},
		"setupCopyCat":     {"networkType": {"Basic", "UNet", "Extended"}},
		"setupKeyer":       {"keyerType": {"Primatte", "IBK", "Keylight", "UltraKeyer"}},
	}
	for name, params := range enums {
		d, _ := reg.Lookup(name)
		for param, wantEnum := range params {
			for _, p := range d.Params {
				if p.Name != param {
					continue
				}
				if len(p.Enum) != len(wantEnum) {
					t.Fatalf("%s.%s enum = %v, want %v", name, param, p.Enum, wantEnum)
				}
				for i := range wantEnum {
					if p.Enum[i] != wantEnum[i] {
						t.Fatalf("%s.%s enum = %v, want %v", name, param, p.Enum, wantEnum)
					}
				}
			}
		}
	}

	for _, d := range descs {
		if d.Desc == "" {
			t.Fatalf("%s has empty description", d.Name)
		}
	}
}
