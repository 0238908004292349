package contact

import "fmt"

// GroupName is the name under which contact vertex groups are created on
// both mesh objects.
const GroupName = "contact"

// Object is one selected mesh object of the modeling environment.
type Object interface {
	// Surface returns the object's vertex positions in world space.
	Surface() (Surface, error)
	// WriteGroup persists set as a named, inspectable group of vertex
	// indices attached to the object.
	WriteGroup(name string, set ContactSet) error
}

// Host gives the selector access to the enclosing modeling environment.
// Implementations adapt whatever object selection and vertex group
// facilities the environment has; the selector itself stays host agnostic.
type Host interface {
	// Selected returns the two mesh objects between which contact is
	// wanted. Implementations return an error wrapping ErrInvalidInput
	// when the selection does not yield exactly two mesh objects.
	Selected() (a, b Object, err error)
}

// Run computes the contact sets between the host's two selected objects
// and materializes each set as a vertex group named GroupName on its
// owning object. A selection, input or parameter error aborts before any
// group is written.
func Run(h Host, samplesize int) error {
	objA, objB, err := h.Selected()
	if err != nil {
		return err
	}
	surfA, err := objA.Surface()
	if err != nil {
		return fmt.Errorf("first selected object: %w", err)
	}
	surfB, err := objB.Surface()
	if err != nil {
		return fmt.Errorf("second selected object: %w", err)
	}
	setA, setB, err := ComputeContactSets(surfA, surfB, samplesize)
	if err != nil {
		return err
	}
	if err := objA.WriteGroup(GroupName, setA); err != nil {
		return fmt.Errorf("first object group: %w", err)
	}
	if err := objB.WriteGroup(GroupName, setB); err != nil {
		return fmt.Errorf("second object group: %w", err)
	}
	return nil
}
