package strobe

import "testing"

// Snapshot of fingerprints for a fixed sequence and the default hasher.
// Changing any of these values breaks compatibility with stored fingerprints.
const (
	regSeq  = "ACGATCTGGTACCTAG"
	regK    = 3
	regWMin = 3
	regWMax = 5
)

var (
	regMinO2 = []uint64{
		5508583604130516576, 7820137869046132365, 5541303490076687811, 5796921065369559009,
		7864972478291945971, 6364449594620396814, 4156992363689746675, 5730802552933835827,
		8690393705976365196, 11912708257446301134, 8953117104403771765,
	}
	regMinO3 = []uint64{
		5838247918869859075, 5824753939158295439, 4305531019845332403,
		4497244201314985802, 7896767773547654737, 6896419184433288632,
	}
	regRandO2 = []uint64{
		6508932193244882681, 8820486458160498470, 5796921065369559009, 8819188626893971357,
		7864972478291945971, 8337510363315416394, 6747875957559703611, 8321686146803792763,
		8690393705976365196, 11912708257446301134, 8953117104403771765,
	}
	regRandO3 = []uint64{
		7772345821922645402, 9313381998533055928, 4497244201314985802,
		6763944872458295062, 7896767773547654737, 8376214760954553316,
	}
)

func equalU64(t *testing.T, got, want []uint64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d\n got  %v\n want %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRegression(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		order  int
		want   []uint64
	}{
		{"MinStrobes/order2", PolicyMin, 2, regMinO2},
		{"MinStrobes/order3", PolicyMin, 3, regMinO3},
		{"RandStrobes/order2", PolicyRand, 2, regRandO2},
		{"RandStrobes/order3", PolicyRand, 3, regRandO3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Params{Order: tc.order, StrobeLength: regK, WMin: regWMin, WMax: regWMax}
			it, err := New(tc.policy, []byte(regSeq), p, nil)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			equalU64(t, Collect(it), tc.want)
		})
	}
}

func TestRegression_Indexes(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		order  int
		want   [][3]int
	}{
		{"MinStrobes/order2", PolicyMin, 2, [][3]int{
			{0, 5, 0}, {1, 5, 0}, {2, 5, 0}, {3, 6, 0}, {4, 7, 0}, {5, 10, 0},
			{6, 11, 0}, {7, 11, 0}, {8, 11, 0}, {9, 12, 0}, {10, 13, 0},
		}},
		{"MinStrobes/order3", PolicyMin, 3, [][3]int{
			{0, 5, 10}, {1, 5, 11}, {2, 5, 11}, {3, 6, 11}, {4, 7, 12}, {5, 10, 13},
		}},
		{"RandStrobes/order2", PolicyRand, 2, [][3]int{
			{0, 4, 0}, {1, 4, 0}, {2, 6, 0}, {3, 8, 0}, {4, 7, 0}, {5, 8, 0},
			{6, 10, 0}, {7, 10, 0}, {8, 11, 0}, {9, 12, 0}, {10, 13, 0},
		}},
		{"RandStrobes/order3", PolicyRand, 3, [][3]int{
			{0, 4, 8}, {1, 4, 9}, {2, 6, 11}, {3, 8, 11}, {4, 7, 12}, {5, 8, 13},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Params{Order: tc.order, StrobeLength: regK, WMin: regWMin, WMax: regWMax}
			it, err := New(tc.policy, []byte(regSeq), p, nil)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got := Drain(it)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d strobemers, want %d", len(got), len(tc.want))
			}
			for i, sm := range got {
				if sm.Index != tc.want[i] {
					t.Errorf("strobemer %d: indexes %v, want %v", i, sm.Index, tc.want[i])
				}
			}
		})
	}
}
