//go:build gomock || generate

package quicwire

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package quicwire -self_package github.com/quic-go/quicwire -destination mock_send_conn_test.go github.com/quic-go/quicwire SendConn"
