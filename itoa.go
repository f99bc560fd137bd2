package floatg

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// FormatUint32 writes the decimal digits of u to the start of dst and returns the number of bytes written. dst must be able to hold 10 bytes.
func FormatUint32(dst []byte, u uint32) int {
	if u < 100 {
		return formatSmall(dst, u)
	}
	return formatUint(dst, uint64(u))
}

// FormatUint64 writes the decimal digits of u to the start of dst and returns the number of bytes written. dst must be able to hold 20 bytes.
func FormatUint64(dst []byte, u uint64) int {
	if u < 100 {
		return formatSmall(dst, uint32(u))
	}
	return formatUint(dst, u)
}

func formatSmall(dst []byte, u uint32) int {
	if u < 10 {
		dst[0] = smallsString[2*u+1]
		return 1
	}
	dst[0] = smallsString[2*u]
	dst[1] = smallsString[2*u+1]
	return 2
}

// formatUint extracts digits least-significant first into a scratch buffer and reverses them into dst.
func formatUint(dst []byte, u uint64) int {
	var tmp [20]byte
	n := 0
	for {
		tmp[n] = byte('0' + u%10)
		n++
		u /= 10
		if u == 0 {
			break
		}
	}
	for i := 0; i < n; i++ {
		dst[i] = tmp[n-1-i]
	}
	return n
}
