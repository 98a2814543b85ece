/*
Package bcl is a base-class-library style collections core.

The object model

Containers never compare their elements with ==.
Stored values implement the contracts of the system package:
Equals for equality, and HashCode when they are used as keys of a hashed container.
Values that are equal must report the same hash code.
The system package also ships the primitive value types (String, Int32, Char, Boolean),
and Ref, which gives reference identity to any struct that embeds it.

The containers

The collections package holds four containers.

Collection is an ordered list that permits duplicates.

Dictionary stores pairs under the String form of their keys, and Hashtable under their hash codes.
Their enumerators and their key and value views are snapshots.

LinkedList keeps its entries on a doubly linked chain, in insertion order.
Its enumerators and its views walk the live chain, and they are fail-fast:
after any structural change of the list, they stop and report ErrInvalidState.

Enumeration

Every container hands out a pull iterator with GetEnumerator:

	e := list.GetEnumerator()
	defer e.Dispose()
	for e.MoveNext() {
		fmt.Println(e.Current())
	}
	return e.Err()

collections.Iter adapts the same thing to range-over-func,
while collections.ForEach stops at the first callback that produces a result.

Errors

Errors are constant sentinels from the errorkit package, so check them with errors.Is:

	if errors.Is(err, collections.ErrDuplicateKey) {
		// ...
	}

Logging

Fail-fast invalidations and identity lock acquisitions are logged on debug level through the logger package.
Set LOG_LEVEL=debug to see them.
*/
package bcl
