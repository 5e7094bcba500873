// core/extract/extract_test.go
package extract

import (
	"reflect"
	"testing"
)

func TestProducts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		chatter []string
		want    []string
	}{
		{
			name: "two records, one wrapped",
			raw:  ">x\nACGT\nACGT\n>y\nTTTT\n",
			want: []string{"ACGTACGT", "TTTT"},
		},
		{
			name: "block separator terminates",
			raw:  ">x\nACGT\n--\nignored chatter\n>y\nGGGG\n",
			want: []string{"ACGT", "GGGG"},
		},
		{
			name: "chatter only, no records",
			raw:  "** Message: loading...\ndone in 0.2s\n",
			want: nil,
		},
		{
			name:    "chatter filter drops banner lines",
			raw:     "ipcress: starting\n>x\nacgt\nipcress: done\n>y\nTT\nTT\n",
			chatter: []string{"ipcress"},
			want:    []string{"ACGT", "TTTT"},
		},
		{
			name: "leading and trailing blanks tolerated",
			raw:  "\n\n>x\n  ACGT  \n\nACGT\n\n\n",
			want: []string{"ACGTACGT"},
		},
		{
			name: "header with no sequence dropped",
			raw:  ">empty\n>y\nAAAA\n",
			want: []string{"AAAA"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Products(tc.raw, tc.chatter)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Products(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}
