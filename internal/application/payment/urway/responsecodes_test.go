package urway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeResponseCode(t *testing.T) {
	assert.Equal(t, "Transaction successful", DescribeResponseCode("000"))
	assert.Equal(t, "Transaction declined by issuer", DescribeResponseCode("201"))
	assert.Equal(t, "Unrecognized gateway response code", DescribeResponseCode("999"))
	assert.Equal(t, "Unrecognized gateway response code", DescribeResponseCode(""))
}
