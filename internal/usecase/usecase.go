package usecase

import "context"

type StoreUC interface {
	CreateStore(ctx context.Context, req *CreateStoreReq) (*CreateStoreRes, error)
	GetStorefront(ctx context.Context, req *GetStorefrontReq) (*StorefrontRes, error)
	UpdateStore(ctx context.Context, req *UpdateStoreReq) (*StoreInfo, error)
}

type ProductUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*ProductInfo, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, req *DeleteProductReq) error
}

type AuthUC interface {
	SignUp(ctx context.Context, req *CredentialsReq) (*SessionRes, error)
	SignIn(ctx context.Context, req *CredentialsReq) (*SessionRes, error)
	SignOut(ctx context.Context, identity *Identity) error
	VerifyToken(ctx context.Context, token string) (*Identity, error)
	CurrentUser(ctx context.Context, identity *Identity) (*UserInfo, error)
}

type OrderUC interface {
	BuildOrderLink(ctx context.Context, req *OrderLinkReq) (*OrderLinkRes, error)
}
