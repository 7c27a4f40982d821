package handler

import (
	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

func toCreateSupplierInput(r createSupplierRequest) ports.CreateSupplierInput {
	return ports.CreateSupplierInput{
		Name:         r.Name,
		Description:  r.Description,
		Website:      r.Website,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Address:      r.Address,
	}
}

func toUpdateSupplierInput(r updateSupplierRequest) ports.UpdateSupplierInput {
	return ports.UpdateSupplierInput{
		Name:         r.Name,
		Description:  r.Description,
		Website:      r.Website,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Address:      r.Address,
	}
}

func toCreateProductInput(r createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        r.Name,
		SupplierID:  r.SupplierID,
		Description: r.Description,
		Version:     r.Version,
		ProductURL:  r.ProductURL,
		SupportURL:  r.SupportURL,
		LicenseType: r.LicenseType,
	}
}

func toUpdateProductInput(r updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:        r.Name,
		SupplierID:  r.SupplierID,
		Description: r.Description,
		Version:     r.Version,
		ProductURL:  r.ProductURL,
		SupportURL:  r.SupportURL,
		LicenseType: r.LicenseType,
	}
}

func toCreateBusinessAppInput(r createBusinessAppRequest) ports.CreateBusinessAppInput {
	return ports.CreateBusinessAppInput{
		Name:                r.Name,
		Description:         r.Description,
		ArchitecturalOwner:  r.ArchitecturalOwner,
		BusinessOwner:       r.BusinessOwner,
		ProductOwner:        r.ProductOwner,
		SystemOwner:         r.SystemOwner,
		Status:              r.Status,
		ResilienceCategory:  r.ResilienceCategory,
		HostingType:         r.HostingType,
		CloudProvider:       r.CloudProvider,
		DevelopmentType:     r.DevelopmentType,
		GeographicLocations: r.GeographicLocations,
		Technologies:        r.Technologies,
		Dependencies:        r.Dependencies,
		ProductID:           r.ProductID,
	}
}

func toUpdateBusinessAppInput(r updateBusinessAppRequest) ports.UpdateBusinessAppInput {
	return ports.UpdateBusinessAppInput{
		Name:                r.Name,
		Description:         r.Description,
		ArchitecturalOwner:  r.ArchitecturalOwner,
		BusinessOwner:       r.BusinessOwner,
		ProductOwner:        r.ProductOwner,
		SystemOwner:         r.SystemOwner,
		Status:              r.Status,
		ResilienceCategory:  r.ResilienceCategory,
		HostingType:         r.HostingType,
		CloudProvider:       r.CloudProvider,
		DevelopmentType:     r.DevelopmentType,
		GeographicLocations: r.GeographicLocations,
		Technologies:        r.Technologies,
		Dependencies:        r.Dependencies,
		ProductID:           r.ProductID,
	}
}

func toDecisionOptions(in []decisionOptionRequest) []domain.DecisionOption {
	if in == nil {
		return nil
	}
	out := make([]domain.DecisionOption, len(in))
	for i, o := range in {
		out[i] = domain.DecisionOption{
			Name:           o.Name,
			Description:    o.Description,
			Pros:           o.Pros,
			Cons:           o.Cons,
			CostEstimate:   o.CostEstimate,
			EffortEstimate: o.EffortEstimate,
		}
	}
	return out
}

func toCreateADRInput(r createADRRequest) ports.CreateADRInput {
	return ports.CreateADRInput{
		Title:              r.Title,
		Context:            r.Context,
		Options:            toDecisionOptions(r.Options),
		RecommendedOption:  r.RecommendedOption,
		StrategicSelection: r.StrategicSelection,
		InterimSelection:   r.InterimSelection,
		DecisionRationale:  r.DecisionRationale,
		Consequences:       r.Consequences,
		Status:             r.Status,
		Author:             r.Author,
		Stakeholders:       r.Stakeholders,
		RelatedADRs:        r.RelatedADRs,
	}
}

func toUpdateADRInput(r updateADRRequest) ports.UpdateADRInput {
	in := ports.UpdateADRInput{
		Title:              r.Title,
		Context:            r.Context,
		RecommendedOption:  r.RecommendedOption,
		StrategicSelection: r.StrategicSelection,
		InterimSelection:   r.InterimSelection,
		DecisionRationale:  r.DecisionRationale,
		Consequences:       r.Consequences,
		Status:             r.Status,
		Author:             r.Author,
		Stakeholders:       r.Stakeholders,
		RelatedADRs:        r.RelatedADRs,
	}
	if r.Options != nil {
		opts := toDecisionOptions(*r.Options)
		if opts == nil {
			opts = []domain.DecisionOption{}
		}
		in.Options = &opts
	}
	return in
}

func toCreateTechDebtInput(r createTechDebtRequest) ports.CreateTechDebtInput {
	return ports.CreateTechDebtInput{
		Title:                r.Title,
		Description:          r.Description,
		Owner:                r.Owner,
		Priority:             r.Priority,
		Status:               r.Status,
		LinkedADRID:          r.LinkedADRID,
		Impact:               r.Impact,
		EffortEstimate:       r.EffortEstimate,
		TargetResolutionDate: r.TargetResolutionDate,
		ActualResolutionDate: r.ActualResolutionDate,
		AffectedSystems:      r.AffectedSystems,
		Tags:                 r.Tags,
	}
}

func toUpdateTechDebtInput(r updateTechDebtRequest) ports.UpdateTechDebtInput {
	return ports.UpdateTechDebtInput{
		Title:                r.Title,
		Description:          r.Description,
		Owner:                r.Owner,
		Priority:             r.Priority,
		Status:               r.Status,
		LinkedADRID:          r.LinkedADRID,
		Impact:               r.Impact,
		EffortEstimate:       r.EffortEstimate,
		TargetResolutionDate: r.TargetResolutionDate.input(),
		ActualResolutionDate: r.ActualResolutionDate.input(),
		AffectedSystems:      r.AffectedSystems,
		Tags:                 r.Tags,
	}
}

func toCreateUserInput(r createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Email:           r.Email,
		Name:            r.Name,
		Password:        r.Password,
		Role:            r.Role,
		Status:          r.Status,
		AuthProvider:    domain.AuthProviderLocal,
		ProfileImageURL: r.ProfileImageURL,
	}
}

func toUpdateUserInput(r updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Email:           r.Email,
		Name:            r.Name,
		Password:        r.Password,
		Role:            r.Role,
		Status:          r.Status,
		ProfileImageURL: r.ProfileImageURL,
	}
}

// toProductResponses joins products with supplier names. Unknown suppliers
// leave the name empty.
func toProductResponses(products []domain.Product, supplierNames map[string]string) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productResponse{Product: p, SupplierName: supplierNames[p.SupplierID]}
	}
	return out
}

func toBusinessAppResponses(apps []domain.BusinessApp, productNames map[string]string) []businessAppResponse {
	out := make([]businessAppResponse, len(apps))
	for i, a := range apps {
		out[i] = businessAppResponse{BusinessApp: a, ProductName: productNames[a.ProductID]}
	}
	return out
}
