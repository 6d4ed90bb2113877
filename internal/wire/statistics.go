package wire

// Statistic is one named counter entry (spec C2 "Statistics").
type Statistic struct {
	Name   string
	Amount uint32
}

// ReadStatisticArray reads the statistics list: varint n, then n
// (string name, varint amount) pairs.
func ReadStatisticArray(b *ReadBuffer) ([]Statistic, error) {
	n, err := ReadVarint(b)
	if err != nil {
		return nil, err
	}
	out := make([]Statistic, n)
	for i := range out {
		name, err := ReadString(b)
		if err != nil {
			return nil, err
		}
		amount, err := ReadVarint(b)
		if err != nil {
			return nil, err
		}
		out[i] = Statistic{Name: name, Amount: amount}
	}
	return out, nil
}

// WriteStatisticArray writes the statistics list.
func WriteStatisticArray(w *WriteBuffer, stats []Statistic) error {
	if err := WriteVarint(w, uint32(len(stats))); err != nil {
		return err
	}
	for _, s := range stats {
		if err := WriteString(w, s.Name); err != nil {
			return err
		}
		if err := WriteVarint(w, s.Amount); err != nil {
			return err
		}
	}
	return nil
}
