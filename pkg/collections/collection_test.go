package collections_test

import (
	"testing"

	"go.llib.dev/bcl/pkg/collections"
	"go.llib.dev/bcl/pkg/system"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestCollection(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *collections.Collection[system.String] {
		return collections.NewCollection[system.String]()
	})

	items := func(t *testcase.T) []system.String {
		got, err := collections.Collect[system.String](subject.Get(t))
		assert.NoError(t, err)
		return got
	}

	s.Test("smoke", func(t *testcase.T) {
		c := subject.Get(t)
		assert.False(t, c.IsReadOnly())
		assert.NoError(t, c.Add("a"))
		assert.NoError(t, c.Add("b"))
		assert.NoError(t, c.Add("a"))
		assert.Equal(t, 3, c.Count())
		assert.Equal(t, []system.String{"a", "b", "a"}, items(t))

		ok, err := c.Remove("a")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []system.String{"b", "a"}, items(t), "only the first equal item is removed")

		assert.NoError(t, c.Clear())
		assert.Equal(t, 0, c.Count())
		assert.Empty(t, items(t))
	})

	s.Describe("#Add", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []system.String {
			return random.Slice(t.Random.IntBetween(1, 12), func() system.String {
				return system.String(t.Random.StringNC(3, random.CharsetAlpha()))
			})
		})
		act := let.Act(func(t *testcase.T) error {
			for _, v := range values.Get(t) {
				if err := subject.Get(t).Add(v); err != nil {
					return err
				}
			}
			return nil
		})

		s.Then("insertion order is preserved", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, values.Get(t), items(t))
			assert.Equal(t, len(values.Get(t)), subject.Get(t).Count())
		})

		s.Then("every added item is contained", func(t *testcase.T) {
			assert.NoError(t, act(t))
			for _, v := range values.Get(t) {
				ok, err := subject.Get(t).Contains(v)
				assert.NoError(t, err)
				assert.True(t, ok)
			}
		})

		s.When("the collection is read-only", func(s *testcase.Spec) {
			subject.Let(s, func(t *testcase.T) *collections.Collection[system.String] {
				return collections.ReadOnlyCollection[system.String]("x")
			})

			s.Then("it is not supported", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), collections.ErrNotSupported)
				assert.Equal(t, []system.String{"x"}, items(t))
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		item := let.Var(s, func(t *testcase.T) system.String {
			return system.String(t.Random.String())
		})
		act := let.Act2(func(t *testcase.T) (bool, error) {
			return subject.Get(t).Remove(item.Get(t))
		})

		s.When("the item is absent", func(s *testcase.Spec) {
			s.Then("nothing is removed", func(t *testcase.T) {
				ok, err := act(t)
				assert.NoError(t, err)
				assert.False(t, ok)
			})
		})

		s.When("the item is present between others", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.NoError(t, subject.Get(t).Add("before"))
				assert.NoError(t, subject.Get(t).Add(item.Get(t)))
				assert.NoError(t, subject.Get(t).Add("after"))
			})

			s.Then("it is removed and the rest keeps its order", func(t *testcase.T) {
				ok, err := act(t)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, []system.String{"before", "after"}, items(t))

				contains, err := subject.Get(t).Contains(item.Get(t))
				assert.NoError(t, err)
				assert.False(t, contains)
			})
		})

		s.When("the collection is read-only", func(s *testcase.Spec) {
			subject.Let(s, func(t *testcase.T) *collections.Collection[system.String] {
				return collections.ReadOnlyCollection(item.Get(t))
			})

			s.Then("it is not supported", func(t *testcase.T) {
				ok, err := act(t)
				assert.ErrorIs(t, err, collections.ErrNotSupported)
				assert.False(t, ok)
				assert.Equal(t, 1, subject.Get(t).Count())
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		s.When("the collection is read-only", func(s *testcase.Spec) {
			subject.Let(s, func(t *testcase.T) *collections.Collection[system.String] {
				return collections.NewCollection[system.String]("a", "b").AsReadOnly()
			})

			s.Then("it is not supported", func(t *testcase.T) {
				assert.True(t, subject.Get(t).IsReadOnly())
				assert.ErrorIs(t, subject.Get(t).Clear(), collections.ErrNotSupported)
				assert.Equal(t, 2, subject.Get(t).Count())
			})
		})
	})

	s.Describe("#CopyTo", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).Add("a"))
			assert.NoError(t, subject.Get(t).Add("b"))
		})

		s.Test("copies from the index", func(t *testcase.T) {
			dst := make([]system.String, 4)
			assert.NoError(t, subject.Get(t).CopyTo(dst, 1))
			assert.Equal(t, []system.String{"", "a", "b", ""}, dst)
		})

		s.Test("nil destination", func(t *testcase.T) {
			assert.ErrorIs(t, subject.Get(t).CopyTo(nil, 0), collections.ErrNullArgument)
		})

		s.Test("negative index", func(t *testcase.T) {
			assert.ErrorIs(t, subject.Get(t).CopyTo([]system.String{}, -1), collections.ErrOutOfRange)
		})

		s.Test("destination too short", func(t *testcase.T) {
			dst := make([]system.String, 2)
			assert.ErrorIs(t, subject.Get(t).CopyTo(dst, 1), collections.ErrArgument)
			assert.Equal(t, []system.String{"", ""}, dst)
		})
	})

	s.Describe("#GetEnumerator", func(s *testcase.Spec) {
		s.Test("the enumerator is a snapshot", func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).Add("a"))
			e := subject.Get(t).GetEnumerator()
			assert.NoError(t, subject.Get(t).Add("b"))
			_, _ = subject.Get(t).Remove("a")

			assert.True(t, e.MoveNext())
			assert.Equal[system.String](t, "a", e.Current())
			assert.False(t, e.MoveNext())
			assert.NoError(t, e.Err())
		})
	})
}

func TestCollection_nilItems(t *testing.T) {
	c := collections.NewCollection[*box](nil, &box{N: 1})

	ok, err := c.Contains(nil)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.Contains(&box{N: 2})
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Remove(nil)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.Contains(nil)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Count())
}

func TestKeyValuePair_Equals_nilValues(t *testing.T) {
	empty := collections.PairOf[system.String, *box]("k", nil)
	full := collections.PairOf[system.String, *box]("k", &box{N: 1})

	assert.True(t, empty.Equals(collections.PairOf[system.String, *box]("k", nil)))
	assert.False(t, empty.Equals(full))
	assert.False(t, full.Equals(empty))
	assert.True(t, full.Equals(collections.PairOf[system.String, *box]("k", &box{N: 1})))
}
