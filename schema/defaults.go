package schema

import "sync"

// Image sizes used across the firmware's history.
const (
	Size5x  = 0x670
	Size513 = 0xA00
	Size6x  = 0xE00
	Size66  = 0x1000
)

var defaults = sync.OnceValue(func() *Registry {
	return NewRegistry([]Entry{
		{0x8020004, Size66, setting8_2_0_4()},
		{0x8020003, Size66, setting8_2_0_3()},
		{0x8010000, Size66, setting8_1_0_0()},
		{0x8000001, Size66, setting8_0_0_1()},
		{0x7010206, Size66, setting7_1_2_6()},
		{0x7010205, Size66, setting7_1_2_5()},
		{0x7000004, Size66, setting7_0_0_4()},
		{0x6060015, Size66, setting6_6_0_21()},
		{0x606000A, Size66, setting6_6_0_10()},
		{0x6060007, Size66, setting6_6_0_7()},
		{0x6050006, Size6x, setting6_5_0_6()},
		{0x6040108, Size6x, setting6_4_1_8()},
		{0x6030000, Size6x, setting6_3_0()},
		{0x602010E, Size6x, setting6_2_1_14()},
		{0x6020100, Size6x, setting6_2_1()},
		{0x6010100, Size6x, setting6_1_1()},
		{0x6000000, Size6x, setting6_0_0()},
		{0x50E0000, Size513, setting5_14_0()},
		{0x50D0100, Size513, setting5_13_1()},
		{0x50C0000, Size5x, setting5_12_0()},
		{0x50B0000, Size5x, setting5_11_0()},
		{0x50A0000, Size5x, setting5_10_0()},
	})
})

// Defaults returns the built-in registry. The layout snapshots are built on
// first use and shared; callers must treat them as immutable.
func Defaults() *Registry {
	return defaults()
}
