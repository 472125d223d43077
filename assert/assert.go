package assert

import "github.com/tickforge/voxelphys/simerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(simerror.New(message, args...))
	}
}
