package shapes

type Rect struct{ W, H int }

func (r Rect) Area() int {
	return r.W * r.H
}

func Square(s int) Rect {
	return Rect{s, s}
}
