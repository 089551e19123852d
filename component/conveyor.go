package component

// Conveyor is a decorative belt, it has no physical interaction
type Conveyor struct {
	X   float64 `msgpack:"x"`
	Y   float64 `msgpack:"y"`
	W   float64 `msgpack:"w"`
	H   float64 `msgpack:"h"`
	Dir int     `msgpack:"dir"`
}
