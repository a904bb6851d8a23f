package truth

import "testing"

func TestAndOrNot(t *testing.T) {
	vals := []Value{True, False, Unknown}
	for _, a := range vals {
		if Not(Not(a)) != a {
			t.Fatalf("double negation changed %v", a)
		}
	}

	if And(True, Unknown) != Unknown {
		t.Fatalf("And(True, Unknown) should be Unknown")
	}
	if And(False, Unknown) != False {
		t.Fatalf("And(False, Unknown) should be False (False absorbing)")
	}
	if Or(True, Unknown) != True {
		t.Fatalf("Or(True, Unknown) should be True (True absorbing)")
	}
	if Or(False, Unknown) != Unknown {
		t.Fatalf("Or(False, Unknown) should be Unknown")
	}
	if Not(Unknown) != Unknown {
		t.Fatalf("Not(Unknown) should be Unknown")
	}
}

func TestFromBool(t *testing.T) {
	if FromBool(true) != True || FromBool(false) != False {
		t.Fatalf("FromBool mapping wrong")
	}
}

func TestIsDecided(t *testing.T) {
	if IsDecided(Unknown) {
		t.Fatalf("Unknown must not be decided")
	}
	if !IsDecided(True) || !IsDecided(False) {
		t.Fatalf("True/False must be decided")
	}
}
