package cereal

import (
	"capnproto.org/go/capnp/v3"
	"pfeifer.dev/pccd/cereal/custom"
)

func CarInputCreator(seg *capnp.Segment) (custom.CarInput, error) {
	return custom.NewRootCarInput(seg)
}

func RadarStateCreator(seg *capnp.Segment) (custom.RadarState, error) {
	return custom.NewRootRadarState(seg)
}

func MapDataCreator(seg *capnp.Segment) (custom.MapData, error) {
	return custom.NewRootMapData(seg)
}

func PccCommandCreator(seg *capnp.Segment) (custom.PccCommand, error) {
	return custom.NewRootPccCommand(seg)
}

func PccStateCreator(seg *capnp.Segment) (custom.PccState, error) {
	return custom.NewRootPccState(seg)
}
