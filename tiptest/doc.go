/*
Package tiptest provides in memory implementations of the host runtime
capabilities together with key and address generation helpers, to be
used in tests.
*/
package tiptest
