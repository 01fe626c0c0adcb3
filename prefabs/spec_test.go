package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/physics"
)

func TestLoadPhysicsSpec(t *testing.T) {
	spec, err := LoadPhysicsSpec()
	if err != nil {
		t.Fatalf("LoadPhysicsSpec: %v", err)
	}
	if spec.TPS != 60 || !spec.Broadphase {
		t.Fatalf("spec = %+v", spec)
	}

	lib, err := BuildShapeLibrary(spec)
	if err != nil {
		t.Fatalf("BuildShapeLibrary: %v", err)
	}
	want := []string{"player_body", "foot_probe", "crate", "crate_probe"}
	if got := lib.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}

	kinds := map[string]physics.ShapeKind{
		"player_body": physics.KindAABB,
		"foot_probe":  physics.KindRay,
		"crate_probe": physics.KindCustom,
	}
	for name, kind := range kinds {
		s, ok := lib.Lookup(name)
		if !ok {
			t.Fatalf("missing %q", name)
		}
		if s.Kind() != kind {
			t.Fatalf("%q kind = %v, want %v", name, s.Kind(), kind)
		}
		s.Release()
	}
}

func TestDefineShapesRebindsNewInstances(t *testing.T) {
	spec := PhysicsSpec{Shapes: []ShapeSpec{{Name: "box", Type: "aabb", HalfWidth: 2, HalfHeight: 2}}}
	lib, err := BuildShapeLibrary(spec)
	if err != nil {
		t.Fatalf("BuildShapeLibrary: %v", err)
	}
	before, _ := lib.Lookup("box")

	spec.Shapes[0].HalfWidth = 5
	if err := DefineShapes(lib, spec); err != nil {
		t.Fatalf("DefineShapes: %v", err)
	}
	after, _ := lib.Lookup("box")

	if before.Same(after) {
		t.Fatalf("redefinition reused the old instance")
	}
	if got := before.Bounds(cp.Vector{}); got.R != 2 {
		t.Fatalf("old handle bounds = %v, want half width 2", got)
	}
	if got := after.Bounds(cp.Vector{}); got.R != 5 {
		t.Fatalf("new handle bounds = %v, want half width 5", got)
	}
}

func TestShapeSpecErrors(t *testing.T) {
	tests := []struct {
		name  string
		shape ShapeSpec
		want  error
	}{
		{"unknown type", ShapeSpec{Name: "x", Type: "circle"}, ErrUnknownShapeType},
		{"unknown part", ShapeSpec{Name: "x", Type: "custom", Parts: []PartSpec{{Shape: "nope"}}}, ErrUnknownShape},
		{"empty custom", ShapeSpec{Name: "x", Type: "custom"}, physics.ErrEmptyComposite},
		{"flat box", ShapeSpec{Name: "x", Type: "aabb", HalfWidth: 1}, physics.ErrInvalidHalfSize},
		{"bad direction", ShapeSpec{Name: "x", Type: "ray", Direction: "sideways", Length: 3}, physics.ErrInvalidCardinal},
		{"short ray", ShapeSpec{Name: "x", Type: "ray", Direction: "up"}, physics.ErrZeroLengthRay},
		{"unnamed", ShapeSpec{Type: "aabb", HalfWidth: 1, HalfHeight: 1}, ErrUnnamedShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildShapeLibrary(PhysicsSpec{Shapes: []ShapeSpec{tt.shape}})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadPlayerPrefab(t *testing.T) {
	spec, err := LoadEntityBuildSpec("player.yaml")
	if err != nil {
		t.Fatalf("LoadEntityBuildSpec: %v", err)
	}
	for _, name := range []string{"actor", "collider", "velocity", "player_controller", "collision_response"} {
		if _, ok := spec.Components[name]; !ok {
			t.Fatalf("player prefab is missing %q", name)
		}
	}

	pc, err := DecodeComponentSpec[PlayerControllerComponentSpec](spec.Components["player_controller"])
	if err != nil {
		t.Fatalf("decode player_controller: %v", err)
	}
	if pc.MoveSpeed <= 0 || pc.JumpSpeed <= 0 || pc.CoyoteFrames <= 0 {
		t.Fatalf("player tuning = %+v", pc)
	}

	col, err := DecodeComponentSpec[ColliderComponentSpec](spec.Components["collider"])
	if err != nil || col.Shape != "player_body" {
		t.Fatalf("collider = %+v, %v", col, err)
	}
}

func TestLoadScriptNames(t *testing.T) {
	for _, name := range []string{"response", "response.tengo", "scripts/response.tengo", "prefabs/scripts/response.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q) returned nothing", name)
		}
	}
}

func TestDiskPrefabsWin(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(dir, PhysicsFile), []byte("tps: 30\nshapes: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	spec, err := LoadPhysicsSpec()
	if err != nil {
		t.Fatalf("LoadPhysicsSpec: %v", err)
	}
	if spec.TPS != 30 || len(spec.Shapes) != 0 {
		t.Fatalf("spec = %+v, want the disk copy", spec)
	}

	if _, err := Load("player.yaml"); err != nil {
		t.Fatalf("embedded fallback: %v", err)
	}
}
