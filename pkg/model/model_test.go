package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPinResponse_CID(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		version uint64
		wantErr bool
	}{
		{name: "CIDv0", hash: "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", version: 0},
		{name: "CIDv1", hash: "bafkreih5aznjvttude6c3wbvqeebb6rlx5wkbzyppv7garjiubll2ceym4", version: 1},
		{name: "garbage", hash: "not-a-cid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PinResponse{IpfsHash: tt.hash}
			c, err := p.CID()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CID() error: %v", err)
			}
			if c.Version() != tt.version {
				t.Fatalf("version = %d, want %d", c.Version(), tt.version)
			}
		})
	}
}

func TestPinResponse_Decode(t *testing.T) {
	body := `{"IpfsHash":"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG","PinSize":12,"Timestamp":"2024-05-01T10:00:00.000Z","isDuplicate":true}`
	var p PinResponse
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.PinSize != 12 || !p.IsDuplicate || p.Timestamp.Year() != 2024 {
		t.Fatalf("unexpected pin response: %+v", p)
	}
}

// TestUserPinnedDataResponse_SizeEncodings verifies that pinned sizes decode
// from both numeric and string JSON values.
func TestUserPinnedDataResponse_SizeEncodings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "numbers", body: `{"pin_count":3,"pin_size_total":123456789012345678901,"pin_size_with_replications_total":5}`},
		{name: "strings", body: `{"pin_count":3,"pin_size_total":"123456789012345678901","pin_size_with_replications_total":"5"}`},
	}

	want := decimal.RequireFromString("123456789012345678901")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r UserPinnedDataResponse
			if err := json.Unmarshal([]byte(tt.body), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if r.PinCount != 3 {
				t.Fatalf("PinCount = %d", r.PinCount)
			}
			if !r.PinSizeTotal.Equal(want) {
				t.Fatalf("PinSizeTotal = %s", r.PinSizeTotal)
			}
			if !r.PinSizeWithReplicationsTotal.Equal(decimal.NewFromInt(5)) {
				t.Fatalf("PinSizeWithReplicationsTotal = %s", r.PinSizeWithReplicationsTotal)
			}
		})
	}
}

func TestPinataOptions_OmitsUnset(t *testing.T) {
	data, err := json.Marshal(PinataOptions{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{}` {
		t.Fatalf("unexpected encoding: %s", data)
	}

	v := 1
	data, _ = json.Marshal(PinataOptions{CIDVersion: &v, GroupID: "g"})
	if string(data) != `{"cidVersion":1,"groupId":"g"}` {
		t.Fatalf("unexpected encoding: %s", data)
	}
}
