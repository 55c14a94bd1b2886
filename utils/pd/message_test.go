package pd

import (
	"reflect"
	"testing"
)

type testMessage struct {
	Term uint64
	Data []byte
}

func (m *testMessage) Reset() { *m = testMessage{} }

func TestMarshalRoundTrip(t *testing.T) {
	tests := []testMessage{
		{},
		{Term: 1},
		{Term: 7, Data: []byte("payload")},
	}

	for i := 0; i < len(tests); i++ {
		data, err := Marshal(&tests[i])
		if err != nil {
			t.Fatalf("#%d: marshal failed: %v", i, err)
		}

		var got testMessage
		if err := Unmarshal(&got, data); err != nil {
			t.Fatalf("#%d: unmarshal failed: %v", i, err)
		}
		if !reflect.DeepEqual(tests[i], got) {
			t.Errorf("#%d: want: %v, get: %v", i, tests[i], got)
		}
	}
}

func TestMustMarshal(t *testing.T) {
	msg := testMessage{Term: 3, Data: []byte("x")}
	data := MustMarshal(&msg)

	var got testMessage
	MustUnmarshal(&got, data)
	if !reflect.DeepEqual(msg, got) {
		t.Errorf("want: %v, get: %v", msg, got)
	}
}

func TestMaybeUnmarshal(t *testing.T) {
	var got testMessage
	if MaybeUnmarshal(&got, []byte("garbage")) {
		t.Errorf("want: false, get: true")
	}

	data := MustMarshal(&testMessage{Term: 2})
	if !MaybeUnmarshal(&got, data) {
		t.Errorf("want: true, get: false")
	}
	if got.Term != 2 {
		t.Errorf("want: 2, get: %d", got.Term)
	}
}
