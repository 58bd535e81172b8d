package grpc

import (
	pb "github.com/dmitrijs2005/presskit/internal/proto"
)

// publicMethods may be called without an access token.
var publicMethods = map[string]struct{}{
	pb.PressKitService_Register_FullMethodName:             {},
	pb.PressKitService_Login_FullMethodName:                {},
	pb.PressKitService_RequestPasswordReset_FullMethodName: {},
	pb.PressKitService_ResetPassword_FullMethodName:        {},
	pb.PressKitService_ConfirmVerification_FullMethodName:  {},
	pb.PressKitService_GetPublishedPressKit_FullMethodName: {},
}
