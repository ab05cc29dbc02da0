package probe

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProbeSuite struct {
	suite.Suite
}

func TestProbeSuite(t *testing.T) {
	suite.Run(t, new(ProbeSuite))
}

func (s *ProbeSuite) TestStringPrecedence() {
	obj, err := Decode([]byte(`{"token_id":"12","tokenId":"34","id":56}`))
	s.Require().NoError(err)

	// first candidate key wins even if later ones are present
	v, ok := obj.String("identifier", "token_id", "tokenId", "id")
	s.True(ok)
	s.Equal("12", v)

	v, ok = obj.String("identifier", "id")
	s.True(ok)
	s.Equal("56", v)

	_, ok = obj.String("identifier")
	s.False(ok)
}

func (s *ProbeSuite) TestStringSkipsEmptyAndNull() {
	obj, err := Decode([]byte(`{"image_url":"","image":null,"thumbnail":"ipfs://x"}`))
	s.Require().NoError(err)

	v, ok := obj.String("image_url", "image", "thumbnail")
	s.True(ok)
	s.Equal("ipfs://x", v)
}

func (s *ProbeSuite) TestLargeNumberKeepsPrecision() {
	obj, err := Decode([]byte(`{"id":57896044618658097711785492504343953926634992332820282019728792003956564819967}`))
	s.Require().NoError(err)

	v, ok := obj.String("id")
	s.True(ok)
	s.Equal("57896044618658097711785492504343953926634992332820282019728792003956564819967", v)
}

func (s *ProbeSuite) TestObjectAndObjects() {
	obj, err := Decode([]byte(`{"criteria":{"metadata":{"identifier":"7"}},"assets":[{"id":"1"},"junk",{"id":"2"}]}`))
	s.Require().NoError(err)

	criteria, ok := obj.Object("criteria")
	s.True(ok)
	meta, ok := criteria.Object("metadata")
	s.True(ok)
	id, ok := meta.String("identifier")
	s.True(ok)
	s.Equal("7", id)

	assets, ok := obj.Objects("assets")
	s.True(ok)
	s.Len(assets, 2)

	_, ok = obj.Object("asset")
	s.False(ok)
}

func (s *ProbeSuite) TestPath() {
	obj, err := Decode([]byte(`{"price":{"current":{"value":"1500000000000000000"}}}`))
	s.Require().NoError(err)

	v, ok := obj.PathString("price", "current", "value")
	s.True(ok)
	s.Equal("1500000000000000000", v)

	_, ok = obj.PathString("price", "previous", "value")
	s.False(ok)
}
