package board

import "fmt"

type ResourceKind int8

const (
	Desert ResourceKind = iota
	Wheat
	Wood
	Sheep
	Brick
	Ore
)

var resourceNames = [...]string{
	Desert: "desert",
	Wheat:  "wheat",
	Wood:   "wood",
	Sheep:  "sheep",
	Brick:  "brick",
	Ore:    "ore",
}

// ResourceKinds lists every kind in its fixed integer order.
func ResourceKinds() []ResourceKind {
	return []ResourceKind{Desert, Wheat, Wood, Sheep, Brick, Ore}
}

func (k ResourceKind) String() string {
	if k < 0 || int(k) >= len(resourceNames) {
		return fmt.Sprintf("ResourceKind(%d)", int8(k))
	}
	return resourceNames[k]
}

func ParseResourceKind(s string) (ResourceKind, error) {
	for i, name := range resourceNames {
		if name == s {
			return ResourceKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", s)
}

// [ResourceKind] implements [encoding.TextMarshaler]
func (k ResourceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ResourceKind) UnmarshalText(text []byte) error {
	v, err := ParseResourceKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
