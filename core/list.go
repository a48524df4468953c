package core

// List collects every occurrence of a repeated option, e.g.
// `--tag a --tag b`. Each raw token is converted with ParseText.
type List[T any] []T

func (l *List[T]) DecodeArg(d Decoder) error {
	in := d.Input()
	out := make(List[T], 0, len(in))
	for _, raw := range in {
		v, err := ParseText[T](d.Key().Label(), raw)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
