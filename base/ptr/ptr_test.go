package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	s.Equal("xion1abc", *String("xion1abc"))
	s.Nil(String(""))
	s.Equal(uint32(20), *Uint32(20))
	s.Equal(true, *Bool(true))
}

func (s *pointerSuite) TestDeref() {
	s.Equal("", Deref(nil))
	s.Equal("cw20", Deref(String("cw20")))
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}
