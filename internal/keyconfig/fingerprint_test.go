package keyconfig

import (
	"testing"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/scope"
)

func fingerprintStore(command string) *Store {
	s := NewStore()
	l := NewLayer("user", SourceUser)
	g := NewGroup("Object Mode").ForScope(scope.View3D)
	g.Add(pressEntry("X", command, key.ModNone))
	l.Add(g)
	s.SetUser(l)
	return s
}

func TestFingerprintStable(t *testing.T) {
	s := fingerprintStore("object.delete")
	if !s.Fingerprint().Equal(s.Fingerprint()) {
		t.Error("fingerprint of unchanged store differs between calls")
	}
}

func TestFingerprintDetectsEqualCountSwap(t *testing.T) {
	a := fingerprintStore("object.delete")
	b := fingerprintStore("object.hide")

	fa, fb := a.Fingerprint(), b.Fingerprint()
	if fa[0].Entries != fb[0].Entries {
		t.Fatal("setup broken: stores should have equal entry counts")
	}
	if fa.Equal(fb) {
		t.Error("swapping one binding for another of equal count must change the fingerprint")
	}
}

func TestFingerprintDetectsActiveFlagFlip(t *testing.T) {
	s := fingerprintStore("object.delete")
	before := s.Fingerprint()

	sig := RowSignature{Group: "Object Mode", Command: "object.delete", Value: ValuePress, KeyModifier: NoKeyModifier}
	if err := s.Deactivate("user", sig); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	if before.Equal(s.Fingerprint()) {
		t.Error("deactivating an entry must change the fingerprint")
	}
}

func TestFingerprintDetectsLayerCountChange(t *testing.T) {
	s := fingerprintStore("object.delete")
	before := s.Fingerprint()

	s.AddExtra(NewLayer("extra", SourceExtra))
	if before.Equal(s.Fingerprint()) {
		t.Error("adding a layer must change the fingerprint")
	}
}
