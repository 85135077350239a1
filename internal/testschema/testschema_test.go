// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package testschema_test

import (
	"reflect"
	"testing"

	"go.nobloat.org/bare"
	"go.nobloat.org/bare/internal/testschema"
	"go.nobloat.org/bare/internal/testutil"
)

func roundTrip[T bare.Marshaler](t *testing.T, value T, decode bare.DecodeFunc[T]) []byte {
	t.Helper()
	buf, err := bare.Marshal(value)
	testutil.AssertNoError(t, err)

	got, err := bare.Unmarshal(buf, decode)
	testutil.AssertNoError(t, err)
	if !reflect.DeepEqual(value, got) {
		t.Errorf("round trip mismatch:\nwant %v\n got %v", value, got)
	}
	return buf
}

func address() testschema.Address {
	return testschema.Address{
		Address: [4]string{"123 Main St", "Suite 4", "", ""},
		City:    "Springfield",
		State:   "IL",
		Country: "US",
	}
}

func TestMemberEncoding(t *testing.T) {
	t.Parallel()

	buf := roundTrip(t, testschema.Member{Name: "Peter", Age: 30}, testschema.DecodeMember)
	testutil.ExpectBytesEq(t, []byte{0x05, 0x50, 0x65, 0x74, 0x65, 0x72, 0x1E}, buf)
}

func TestCustomer(t *testing.T) {
	t.Parallel()

	customer := testschema.Customer{
		Name:    "James Smith",
		Email:   "jsmith@example.org",
		Address: address(),
		Orders: []testschema.Order{
			{OrderId: 4242424242, Quantity: 5},
			{OrderId: -1, Quantity: 1},
		},
		Metadata: map[string][]byte{
			"zeta":  {0x01},
			"alpha": {0x02, 0x03},
		},
	}
	first := roundTrip(t, customer, testschema.DecodeCustomer)

	for range 8 {
		again, err := bare.Marshal(customer)
		testutil.AssertNoError(t, err)
		testutil.ExpectBytesEq(t, first, again)
	}
}

func TestEmployee(t *testing.T) {
	t.Parallel()

	var key testschema.PublicKey
	for i := range key {
		key[i] = byte(i)
	}
	employee := testschema.Employee{
		Name:       "Jane Doe",
		Email:      "jdoe@example.org",
		Address:    address(),
		Department: testschema.DepartmentJsmith,
		HireDate:   "2024-01-15T09:00:00Z",
		PublicKey:  &key,
		Metadata:   map[string][]byte{"badge": {0xCA, 0xFE}},
	}
	roundTrip(t, employee, testschema.DecodeEmployee)

	employee.PublicKey = nil
	roundTrip(t, employee, testschema.DecodeEmployee)
}

func TestPerson(t *testing.T) {
	t.Parallel()

	roundTrip(t, testschema.Person{
		Tag: 0,
		Value: testschema.Customer{
			Name:     "A",
			Address:  address(),
			Orders:   []testschema.Order{{OrderId: 1, Quantity: 1}},
			Metadata: map[string][]byte{"k": {0}},
		},
	}, testschema.DecodePerson)

	buf := roundTrip(t, testschema.Person{
		Tag:   2,
		Value: testschema.TerminatedEmployee{},
	}, testschema.DecodePerson)
	testutil.ExpectBytesEq(t, []byte{0x02}, buf)
}

func TestPersonErrors(t *testing.T) {
	t.Parallel()

	_, err := bare.Unmarshal([]byte{0x05}, testschema.DecodePerson)
	testutil.ExpectErrorIs(t, bare.ErrUnknownUnionTag, err)

	_, err = bare.Marshal(testschema.Person{Tag: 7, Value: testschema.TerminatedEmployee{}})
	testutil.ExpectErrorIs(t, bare.ErrUnmappedUnionTag, err)

	_, err = bare.Marshal(testschema.Person{Tag: 0, Value: testschema.TerminatedEmployee{}})
	testutil.ExpectErrorIs(t, bare.ErrInvalidValue, err)
}

func TestEnums(t *testing.T) {
	t.Parallel()

	buf := roundTrip(t, testschema.DepartmentJsmith, testschema.DecodeDepartment)
	testutil.ExpectBytesEq(t, []byte{99}, buf)

	_, err := bare.Unmarshal([]byte{0x04}, testschema.DecodeDepartment)
	testutil.ExpectErrorIs(t, bare.ErrInvalidEnumValue, err)

	_, err = bare.Marshal(testschema.Level(9))
	testutil.ExpectErrorIs(t, bare.ErrInvalidEnumValue, err)

	testutil.ExpectEq(t, "CUSTOMER_SERVICE", testschema.DepartmentCustomerService.String())
	testutil.ExpectEq(t, "Department(7)", testschema.Department(7).String())
}

func TestEnumVarintWidth(t *testing.T) {
	t.Parallel()

	buf := roundTrip(t, testschema.LevelHigh, testschema.DecodeLevel)
	testutil.ExpectBytesEq(t, []byte{0x02}, buf)

	buf = roundTrip(t, testschema.LevelCritical, testschema.DecodeLevel)
	testutil.ExpectBytesEq(t, []byte{0xC8, 0x01}, buf)

	buf = roundTrip(t, testschema.StatusOk, testschema.DecodeStatus)
	testutil.ExpectBytesEq(t, []byte{0xC8, 0x01}, buf)

	buf = roundTrip(t, testschema.StatusNotFound, testschema.DecodeStatus)
	testutil.ExpectBytesEq(t, []byte{0x94, 0x03}, buf)

	// 300 does not fit in the u8 Level.
	_, err := bare.Unmarshal([]byte{0xAC, 0x02}, testschema.DecodeLevel)
	testutil.ExpectErrorIs(t, bare.ErrInvalidEnumValue, err)

	// A fixed-width 200 reads back as the varint 72.
	_, err = bare.Unmarshal([]byte{0xC8, 0x00}, testschema.DecodeStatus)
	testutil.ExpectErrorIs(t, bare.ErrInvalidEnumValue, err)

	testutil.ExpectEq(t, "NOT_FOUND", testschema.StatusNotFound.String())
	testutil.ExpectEq(t, "Status(7)", testschema.Status(7).String())
}

func TestStructFieldOrder(t *testing.T) {
	t.Parallel()

	a := testschema.Order{OrderId: 1, Quantity: 2}
	b := testschema.Order{OrderId: 2, Quantity: 1}

	bufA := roundTrip(t, a, testschema.DecodeOrder)
	bufB := roundTrip(t, b, testschema.DecodeOrder)
	testutil.ExpectBytesEq(t, []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}, bufA)
	testutil.ExpectBytesEq(t, []byte{
		0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
	}, bufB)

	got, err := bare.Unmarshal(bufB, testschema.DecodeOrder)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, b, got)
}

func TestAliases(t *testing.T) {
	t.Parallel()

	buf := roundTrip(t, testschema.Time("2024"), testschema.DecodeTime)
	testutil.ExpectBytesEq(t, []byte{0x04, '2', '0', '2', '4'}, buf)

	buf = roundTrip(t, testschema.TerminatedEmployee{}, testschema.DecodeTerminatedEmployee)
	testutil.ExpectEq(t, 0, len(buf))

	var key testschema.PublicKey
	key[0] = 0xFF
	buf = roundTrip(t, key, testschema.DecodePublicKey)
	testutil.ExpectEq(t, 128, len(buf))

	_, err := bare.Unmarshal(buf[:10], testschema.DecodePublicKey)
	testutil.ExpectErrorIs(t, bare.ErrUnexpectedEOF, err)
}

func TestSample(t *testing.T) {
	t.Parallel()

	labels := []string{"x", "y"}
	sample := testschema.Sample{
		Small:   -128,
		Medium:  65535,
		Large:   -1 << 40,
		Count:   1 << 50,
		Delta:   -300,
		Ratio:   1.5,
		Score:   -2.25,
		Enabled: true,
		Level:   testschema.LevelHigh,
		Grid:    [2]int16{-1, 1},
		Tag:     [4]byte{1, 2, 3, 4},
		Counts:  map[uint32]uint64{1: 10, 300: 3000},
		Labels:  &labels,
	}
	roundTrip(t, sample, testschema.DecodeSample)

	sample.Labels = nil
	roundTrip(t, sample, testschema.DecodeSample)
}

func TestStringMethods(t *testing.T) {
	t.Parallel()

	testutil.ExpectEq(t, "Member{name=Peter, age=0x1e}", testschema.Member{Name: "Peter", Age: 30}.String())
	testutil.ExpectEq(t, "Time{value=2024}", testschema.Time("2024").String())
	testutil.ExpectEq(t, "Order{orderId=1, quantity=2}", testschema.Order{OrderId: 1, Quantity: 2}.String())

	labels := []string{"a"}
	sample := testschema.Sample{
		Level:  testschema.LevelMedium,
		Tag:    [4]byte{0x0A, 0, 0, 0xFF},
		Labels: &labels,
	}
	got := sample.String()
	testutil.ExpectMatch(t, `level=MEDIUM,`, got)
	testutil.ExpectMatch(t, `tag=\[0x0a 0x00 0x00 0xff\],`, got)
	testutil.ExpectMatch(t, `labels=\[a\]\}$`, got)

	sample.Labels = nil
	testutil.ExpectMatch(t, `labels=nil\}$`, sample.String())

	person := testschema.Person{Tag: 2, Value: testschema.TerminatedEmployee{}}
	testutil.ExpectEq(t, "Person{tag=2, value=TerminatedEmployee{value={}}}", person.String())
}
